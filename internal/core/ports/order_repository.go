package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is always loaded and stored together with its items.
type OrderRepository interface {
	// Add persists a new order and its items.
	// A duplicate order number fails with errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order's customer name, statuses and items.
	// Items not yet stored are inserted; stored items are updated in place.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateDetails persists the customer name and the sku, name and
	// quantity of each item, and inserts items not yet stored. Statuses and
	// picked quantities in the store are left as they are.
	UpdateDetails(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ErrObjectNotFound when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get under a row lock held until the surrounding
	// transaction ends. Stores without row locks behave like Get.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its order number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)
}
