package commands

import (
	"context"
	"log/slog"
)

// ResetPickCommandHandler deletes every scan recorded by one pick, sets the
// pick to pending and the order's fulfillment status to NOT_FULFILLED.
//
// Scans recorded by other picks of the same order stay, so progress does not
// necessarily drop to zero. Picked quantities are left as they are; the next
// accepted scan recomputes its line from the remaining scan log.
type ResetPickCommandHandler struct {
	uowFactory PickUoWFactory
	locker     OrderLocker
	logger     *slog.Logger
}

func NewResetPickCommandHandler(uowFactory PickUoWFactory, locker OrderLocker, logger *slog.Logger) ResetPickCommandHandler {
	return ResetPickCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		logger:     logger.With("component", "reset-pick"),
	}
}

// Handle fails with errs.ErrObjectNotFound for unknown picks.
func (h *ResetPickCommandHandler) Handle(ctx context.Context, cmd ResetPickCommand) error {
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

	removed, err := uow.ScanRepository().DeleteByPick(ctx, p.ID())
	if err != nil {
		return err
	}

	p.Reset()
	o.MarkNotFulfilled()

	if err = uow.PickRepository().Update(ctx, p); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "pick reset",
		"pick_id", p.ID().String(),
		"order_number", o.Number(),
		"scans_removed", removed,
	)
	return nil
}
