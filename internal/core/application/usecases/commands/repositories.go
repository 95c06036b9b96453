// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks for the narrowest set of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PickRepoFactory provides access to the pick and scan repositories within a transaction.
	PickRepoFactory interface {
		PickRepository() ports.PickRepository
		ScanRepository() ports.ScanRepository
	}

	// InventoryRepoFactory provides access to locations and the movement journal.
	InventoryRepoFactory interface {
		LocationRepository() ports.LocationRepository
		MovementRepository() ports.MovementRepository
	}

	// CatalogUoW manages transactions for catalog-only operations.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW manages transactions that create or import orders. Orders
	// reference products, so the product repository is available too.
	OrderUoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PickUoW manages transactions of the pick and scan workflow.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   n, err := uow.ScanRepository().CountByOrderItem(ctx, itemID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	PickUoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
		PickRepoFactory
	}

	// PickUoWFactory creates new pick unit of work instances.
	PickUoWFactory interface {
		Create() PickUoW
	}

	// InventoryUoW manages transactions of the inventory side dataset.
	InventoryUoW interface {
		TxManager
		ProductRepoFactory
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}
)

// OrderLocker serializes work on one order. The returned function releases
// the lock and may be called more than once.
type OrderLocker interface {
	Lock(ctx context.Context, orderID kernel.UUID) (func(), error)
}
