package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrCreatePickCommandIsNotConstructed = errors.New(
	"CreatePickCommand must be created via NewCreatePickCommand constructor",
)

// CreatePickCommand starts a new pick session for an order.
//
// Example:
//
//	pickID := kernel.NewUUID()
//	cmd, err := NewCreatePickCommand(pickID, orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid pick request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err // errs.ErrObjectNotFound when the order does not exist
//	}
type CreatePickCommand struct { //nolint:recvcheck //using for validation
	pickID  kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreatePickCommand validates both identifiers.
func NewCreatePickCommand(pickID kernel.UUID, orderID kernel.UUID) (CreatePickCommand, error) {
	if err := errors.Join(pickID.Validate(), orderID.Validate()); err != nil {
		return CreatePickCommand{}, err
	}

	return CreatePickCommand{
		pickID:  pickID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePickCommand) Validate() error {
	return c.guard.Validate(ErrCreatePickCommandIsNotConstructed)
}

func (c CreatePickCommand) PickID() kernel.UUID {
	return c.pickID
}

func (c CreatePickCommand) OrderID() kernel.UUID {
	return c.orderID
}
