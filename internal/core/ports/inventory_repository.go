package ports

import (
	"context"

	"warehouse/internal/core/domain/model/inventory"
)

// LocationRepository stores storage bins and product placements.
type LocationRepository interface {
	// Add persists a location; a duplicate code fails with
	// errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, location *inventory.Location) error

	// GetByCode returns errs.ErrObjectNotFound for unknown codes.
	GetByCode(ctx context.Context, code string) (*inventory.Location, error)

	// SavePlacement inserts or replaces the on-hand count of a product at a
	// location.
	SavePlacement(ctx context.Context, placement inventory.Placement) error
}

// MovementRepository is the stock movement journal.
type MovementRepository interface {
	Add(ctx context.Context, movement *inventory.Movement) error
}
