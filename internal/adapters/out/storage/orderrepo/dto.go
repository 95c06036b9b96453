// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"warehouse/internal/adapters/out/storage/catalogrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored by their string form; an empty fulfillment status
// means none was recorded.
type OrderDTO struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderNumber       string         `gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerName      string         `gorm:"type:varchar(255);not null;default:''"`
	Status            string         `gorm:"type:varchar(32);not null;default:'open';index"`
	FulfillmentStatus string         `gorm:"type:varchar(32);not null;default:''"`
	CreatedAt         time.Time      `gorm:"not null;index"`
	Items             []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. A product can appear once per order, and
// cannot be deleted while an order line references it.
type OrderItemDTO struct {
	ID          uuid.UUID               `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_product"`
	ProductID   uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_product;index"`
	LineNo      int                     `gorm:"type:int;not null;default:0"`
	SKU         string                  `gorm:"type:varchar(255);not null"`
	ProductName string                  `gorm:"type:varchar(255);not null;default:''"`
	Quantity    int                     `gorm:"type:int;not null"`
	PickedQty   int                     `gorm:"type:int;not null;default:0"`
	Product     *catalogrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:NO ACTION"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// CreatedAt is left zero and filled by GORM on insert.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     orderID,
			ProductID:   item.ProductID().Bytes(),
			LineNo:      i,
			SKU:         item.SKU().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			PickedQty:   item.PickedQty(),
		})
	}

	return OrderDTO{
		ID:                orderID,
		OrderNumber:       o.Number(),
		CustomerName:      o.CustomerName(),
		Status:            o.Status().String(),
		FulfillmentStatus: o.FulfillmentStatus().String(),
		Items:             items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-checks the invariants of every item.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	fulfillment, err := order.ParseFulfillmentStatus(dto.FulfillmentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.OrderNumber, dto.CustomerName, status, fulfillment, items)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	sku, err := kernel.NewSKU(dto.SKU)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, orderID, productID, sku, dto.ProductName, dto.Quantity, dto.PickedQty)
}
