package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for manual order
// creation. Every line copies the SKU and name of its product.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. The order starts open.
//
// Returns errs.ErrObjectNotFound for an unknown product and
// errs.ErrObjectAlreadyExists for a taken order number or a product listed
// twice.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	o, err := order.NewOrder(cmd.OrderID(), cmd.Number(), cmd.CustomerName())
	if err != nil {
		return err
	}

	products := uow.ProductRepository()
	for _, line := range cmd.Lines() {
		p, err := products.Get(ctx, line.ProductID)
		if err != nil {
			return err
		}

		item, err := order.NewItem(kernel.NewUUID(), o.ID(), p.ID(), p.SKU(), p.Name(), line.Quantity)
		if err != nil {
			return err
		}
		if err = o.AddItem(item); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
