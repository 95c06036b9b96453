package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrResetPickCommandIsNotConstructed = errors.New(
	"ResetPickCommand must be created via NewResetPickCommand constructor",
)

// ResetPickCommand discards the scans of a pick and returns it to pending.
type ResetPickCommand struct { //nolint:recvcheck //using for validation
	pickID kernel.UUID

	guard guard.ConstructorGuard
}

func NewResetPickCommand(pickID kernel.UUID) (ResetPickCommand, error) {
	if err := pickID.Validate(); err != nil {
		return ResetPickCommand{}, err
	}
	return ResetPickCommand{pickID: pickID, guard: guard.NewConstructorGuard()}, nil
}

func (c ResetPickCommand) Validate() error {
	return c.guard.Validate(ErrResetPickCommandIsNotConstructed)
}

func (c ResetPickCommand) PickID() kernel.UUID {
	return c.pickID
}
