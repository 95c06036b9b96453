package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrMarkPickPartialCommandIsNotConstructed = errors.New(
	"MarkPickPartialCommand must be created via NewMarkPickPartialCommand constructor",
)

// MarkPickPartialCommand marks a pick as left unfinished.
type MarkPickPartialCommand struct { //nolint:recvcheck //using for validation
	pickID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkPickPartialCommand(pickID kernel.UUID) (MarkPickPartialCommand, error) {
	if err := pickID.Validate(); err != nil {
		return MarkPickPartialCommand{}, err
	}
	return MarkPickPartialCommand{pickID: pickID, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkPickPartialCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickPartialCommandIsNotConstructed)
}

func (c MarkPickPartialCommand) PickID() kernel.UUID {
	return c.pickID
}
