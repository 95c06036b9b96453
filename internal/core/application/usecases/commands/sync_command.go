package commands

import (
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrSyncCommandIsNotConstructed = errors.New(
	"SyncCommand must be created via NewSyncCommand constructor",
)

// SyncScope selects what a sync run imports.
type SyncScope string

const (
	SyncScopeProducts SyncScope = "products"
	SyncScopeOrders   SyncScope = "orders"
	SyncScopeAll      SyncScope = "all"
)

// SyncCommand imports the catalog, the orders or both from the external
// source. Products are imported first so order lines can match them.
type SyncCommand struct { //nolint:recvcheck //using for validation
	scope SyncScope

	guard guard.ConstructorGuard
}

func NewSyncCommand(scope string) (SyncCommand, error) {
	s := SyncScope(strings.ToLower(strings.TrimSpace(scope)))
	switch s {
	case SyncScopeProducts, SyncScopeOrders, SyncScopeAll:
	default:
		return SyncCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"scope", fmt.Errorf("%q is not one of products, orders, all", scope),
		)
	}
	return SyncCommand{scope: s, guard: guard.NewConstructorGuard()}, nil
}

func (c SyncCommand) Validate() error {
	return c.guard.Validate(ErrSyncCommandIsNotConstructed)
}

func (c SyncCommand) Scope() SyncScope {
	return c.scope
}

func (c SyncCommand) includesProducts() bool {
	return c.scope == SyncScopeProducts || c.scope == SyncScopeAll
}

func (c SyncCommand) includesOrders() bool {
	return c.scope == SyncScopeOrders || c.scope == SyncScopeAll
}
