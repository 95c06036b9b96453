package commands

import (
	"context"
)

// MarkPickPartialCommandHandler records that an operator left a pick before
// the order was complete. The pick becomes partial and the order's
// fulfillment status PARTIALLY_FULFILLED, whatever the current progress.
// No scan is removed.
type MarkPickPartialCommandHandler struct {
	uowFactory PickUoWFactory
	locker     OrderLocker
}

func NewMarkPickPartialCommandHandler(uowFactory PickUoWFactory, locker OrderLocker) MarkPickPartialCommandHandler {
	return MarkPickPartialCommandHandler{uowFactory: uowFactory, locker: locker}
}

// Handle fails with errs.ErrObjectNotFound for unknown picks.
func (h *MarkPickPartialCommandHandler) Handle(ctx context.Context, cmd MarkPickPartialCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	found, err := uow.PickRepository().Get(ctx, cmd.PickID())
	if err != nil {
		return err
	}

	unlock, err := h.locker.Lock(ctx, found.OrderID())
	if err != nil {
		return err
	}
	defer unlock()

	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, found.OrderID())
	if err != nil {
		return err
	}
	p, err := uow.PickRepository().Get(ctx, cmd.PickID())
	if err != nil {
		return err
	}

	p.MarkPartial()
	o.MarkPartiallyFulfilled()

	if err = uow.PickRepository().Update(ctx, p); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
