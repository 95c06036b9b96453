package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/pick"
)

// PickRepository defines the persistence contract for pick sessions.
type PickRepository interface {
	Add(ctx context.Context, aggregate *pick.Pick) error

	// Update persists the pick status.
	Update(ctx context.Context, aggregate *pick.Pick) error

	// Get returns errs.ErrObjectNotFound for unknown picks.
	Get(ctx context.Context, id kernel.UUID) (*pick.Pick, error)
}

// ScanRepository is the append-only scan log. Progress is always computed
// from these counts, never cached.
type ScanRepository interface {
	Add(ctx context.Context, scan *pick.Scan) error

	// CountByOrderItem counts the scans of an order item over every pick of
	// its order.
	CountByOrderItem(ctx context.Context, orderItemID kernel.UUID) (int, error)

	// CountByOrderItemAndBarcode counts the scans of one barcode for an order
	// item over every pick of its order.
	CountByOrderItemAndBarcode(ctx context.Context, orderItemID kernel.UUID, barcode kernel.Barcode) (int, error)

	// ListByPick returns the scans recorded by one pick, oldest first.
	ListByPick(ctx context.Context, pickID kernel.UUID) ([]*pick.Scan, error)

	// DeleteByPick removes every scan recorded by the pick and reports how
	// many were removed.
	DeleteByPick(ctx context.Context, pickID kernel.UUID) (int, error)
}
