package order

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned for Item literals.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructors")

// Item is one order line. SKU and product name are copied from the catalog
// when the line is created so the delivery note stays stable when the
// product is later renamed.
//
// Item follows these invariants:
//   - quantity >= 1
//   - 0 <= pickedQty <= quantity
type Item struct {
	id          kernel.UUID
	orderID     kernel.UUID
	productID   kernel.UUID
	sku         kernel.SKU
	productName string
	quantity    int
	pickedQty   int

	isConstructed bool
}

// NewItem creates an order line with nothing picked yet.
func NewItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	sku kernel.SKU,
	productName string,
	quantity int,
) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		validateID(id),
		validateID(orderID),
		validateID(productID),
		sku.Validate(),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.id = id
	item.orderID = orderID
	item.productID = productID
	item.sku = sku
	item.productName = strings.TrimSpace(productName)
	return item, nil
}

// RestoreItem rebuilds a persisted order line.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	sku kernel.SKU,
	productName string,
	quantity int,
	pickedQty int,
) (*Item, error) {
	item, err := NewItem(id, orderID, productID, sku, productName, quantity)
	if err != nil {
		return nil, err
	}
	if err := item.setPickedQty(pickedQty); err != nil {
		return nil, err
	}
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

func (i *Item) SKU() kernel.SKU {
	return i.sku
}

func (i *Item) ProductName() string {
	return i.productName
}

// Quantity is the number of requested sets.
func (i *Item) Quantity() int {
	return i.quantity
}

// PickedQty is the number of complete sets picked so far.
func (i *Item) PickedQty() int {
	return i.pickedQty
}

// IsFullyPicked reports pickedQty >= quantity.
func (i *Item) IsFullyPicked() bool {
	return i.pickedQty >= i.quantity
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity < i.pickedQty {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, i.pickedQty, math.MaxInt)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPickedQty(picked int) error {
	if picked < 0 || picked > i.quantity {
		return errs.NewValueIsOutOfRangeError("pickedQty", picked, 0, i.quantity)
	}
	i.pickedQty = picked
	return nil
}

func validateID(id kernel.UUID) error {
	return id.Validate()
}
