package commands

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// CreateLocationCommandHandler registers storage bins.
type CreateLocationCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewCreateLocationCommandHandler(uowFactory InventoryUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{uowFactory: uowFactory}
}

// Handle returns the stored location: the new one, or the existing one with
// the same code.
func (h *CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) (*inventory.Location, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loc, err := ensureLocation(ctx, uow.LocationRepository(), cmd.LocationID(), cmd.Code(), cmd.Name())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return loc, nil
}

// AssignLocationCommandHandler stores a product placement.
type AssignLocationCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewAssignLocationCommandHandler(uowFactory InventoryUoWFactory) AssignLocationCommandHandler {
	return AssignLocationCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectNotFound for an unknown product.
func (h *AssignLocationCommandHandler) Handle(ctx context.Context, cmd AssignLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	locations := uow.LocationRepository()
	loc, err := ensureLocation(ctx, locations, kernel.NewUUID(), cmd.Code(), "")
	if err != nil {
		return err
	}

	placement, err := inventory.NewPlacement(cmd.ProductID(), loc.ID(), cmd.OnHand())
	if err != nil {
		return err
	}
	if err = locations.SavePlacement(ctx, placement); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// RecordStockMovementCommandHandler appends to the movement journal. The
// journal is informational; product inventory quantities are not changed.
type RecordStockMovementCommandHandler struct {
	uowFactory InventoryUoWFactory
	now        func() time.Time
}

func NewRecordStockMovementCommandHandler(uowFactory InventoryUoWFactory) RecordStockMovementCommandHandler {
	return RecordStockMovementCommandHandler{uowFactory: uowFactory, now: time.Now}
}

func (h *RecordStockMovementCommandHandler) Handle(ctx context.Context, cmd RecordStockMovementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	m, err := inventory.NewMovement(cmd.MovementID(), cmd.ProductID(), cmd.Type(), cmd.Quantity(), cmd.Note(), h.now())
	if err != nil {
		return err
	}
	if err = uow.MovementRepository().Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func ensureLocation(
	ctx context.Context,
	repo ports.LocationRepository,
	id kernel.UUID,
	code string,
	name string,
) (*inventory.Location, error) {
	existing, err := repo.GetByCode(ctx, code)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	loc, err := inventory.NewLocation(id, code, name)
	if err != nil {
		return nil, err
	}
	if err = repo.Add(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}
