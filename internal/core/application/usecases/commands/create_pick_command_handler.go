package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/pick"
)

// CreatePickCommandHandler creates pick sessions in status active. An order
// may have any number of picks over time.
type CreatePickCommandHandler struct {
	uowFactory PickUoWFactory
	now        func() time.Time
}

// NewCreatePickCommandHandler creates a handler for pick creation.
func NewCreatePickCommandHandler(uowFactory PickUoWFactory) CreatePickCommandHandler {
	return CreatePickCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle fails with errs.ErrObjectNotFound when the order does not exist.
func (h *CreatePickCommandHandler) Handle(ctx context.Context, cmd CreatePickCommand) error {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	p, err := pick.NewPick(cmd.PickID(), cmd.OrderID(), h.now())
	if err != nil {
		return err
	}

	if err = uow.PickRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
