package order

import (
	"errors"
	"slices"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")
)

// Order represents a customer order in the warehouse. It is the aggregate root
// that owns the order items and both statuses.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty number
//   - At most one item per product
//   - Every item belongs to this order
//   - Status is StatusFulfilled only once every item is fully picked,
//     except for orders restored in that state
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human facing order number, unique in the store
	number string

	// customerName is the display name used on the pick screen and delivery note
	customerName string

	// status is the order lifecycle state
	status Status

	// fulfillmentStatus is the operator progress marker
	fulfillmentStatus FulfillmentStatus

	// items are the order lines in insertion order
	items []*Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an open order without items.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - number: The order number (trimmed, must not be empty)
//   - customerName: Display name of the customer, may be empty
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id kernel.UUID, number string, customerName string) (*Order, error) {
	o := &Order{
		status:        StatusOpen,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
	); err != nil {
		return nil, err
	}
	o.SetCustomerName(customerName)

	return o, nil
}

// RestoreOrder rebuilds an order from storage, re-checking the invariants of
// the order and of every item.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customerName string,
	status Status,
	fulfillmentStatus FulfillmentStatus,
	items []*Item,
) (*Order, error) {
	o, err := NewOrder(id, number, customerName)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(status.Validate(), fulfillmentStatus.Validate()); err != nil {
		return nil, err
	}
	o.status = status
	o.fulfillmentStatus = fulfillmentStatus

	for _, item := range items {
		if err := o.AddItem(item); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the order number.
func (o *Order) Number() string {
	return o.number
}

// CustomerName returns the customer display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Status returns the lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// FulfillmentStatus returns the stored progress marker.
func (o *Order) FulfillmentStatus() FulfillmentStatus {
	return o.fulfillmentStatus
}

// EffectiveFulfillmentStatus folds the lifecycle status into the progress
// marker: a fulfilled order always reports FulfillmentFulfilled.
func (o *Order) EffectiveFulfillmentStatus() FulfillmentStatus {
	if o.status == StatusFulfilled {
		return FulfillmentFulfilled
	}
	return o.fulfillmentStatus
}

// Items returns a copy of the item slice.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// ItemForProduct returns the order line of the given product.
func (o *Order) ItemForProduct(productID kernel.UUID) (*Item, bool) {
	for _, item := range o.items {
		if item.productID.IsEqual(productID) {
			return item, true
		}
	}
	return nil, false
}

// Item returns the order line with the given id.
func (o *Order) Item(id kernel.UUID) (*Item, bool) {
	for _, item := range o.items {
		if item.id.IsEqual(id) {
			return item, true
		}
	}
	return nil, false
}

// SetCustomerName replaces the customer display name.
func (o *Order) SetCustomerName(name string) {
	o.customerName = strings.TrimSpace(name)
}

// AddItem appends an order line.
//
// Returns:
//   - errs.ErrObjectAlreadyExists if the order already has a line for the product
//   - errs.ErrValueIsInvalid if the item belongs to another order
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !item.orderID.IsEqual(o.id) {
		return errs.NewValueIsInvalidError("item.orderID")
	}
	if _, ok := o.ItemForProduct(item.productID); ok {
		return errs.NewObjectAlreadyExistsError("orderItem.productID", item.productID.String())
	}
	o.items = append(o.items, item)
	return nil
}

// ChangeItemQuantity sets a new requested quantity. A quantity lower than
// what is already picked is rejected with errs.ErrValueIsOutOfRange.
func (o *Order) ChangeItemQuantity(itemID kernel.UUID, quantity int) error {
	item, ok := o.Item(itemID)
	if !ok {
		return errs.NewObjectNotFoundError("orderItem", itemID.String())
	}
	return item.setQuantity(quantity)
}

// RecordPickedSets stores the number of complete sets picked for an item.
// sets must be within 0..quantity.
func (o *Order) RecordPickedSets(itemID kernel.UUID, sets int) error {
	item, ok := o.Item(itemID)
	if !ok {
		return errs.NewObjectNotFoundError("orderItem", itemID.String())
	}
	return item.setPickedQty(sets)
}

// IsFullyPicked reports whether every item has pickedQty >= quantity. An
// order without items is never fully picked.
func (o *Order) IsFullyPicked() bool {
	if len(o.items) == 0 {
		return false
	}
	for _, item := range o.items {
		if !item.IsFullyPicked() {
			return false
		}
	}
	return true
}

// CompleteIfFullyPicked moves the order to StatusFulfilled when every item
// is fully picked and reports whether it did so.
func (o *Order) CompleteIfFullyPicked() bool {
	if !o.IsFullyPicked() {
		return false
	}
	o.status = StatusFulfilled
	return true
}

// MarkPartiallyFulfilled sets the progress marker unconditionally.
func (o *Order) MarkPartiallyFulfilled() {
	o.fulfillmentStatus = FulfillmentPartiallyFulfilled
}

// MarkNotFulfilled sets the progress marker unconditionally.
func (o *Order) MarkNotFulfilled() {
	o.fulfillmentStatus = FulfillmentNotFulfilled
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setNumber validates and sets the order number.
func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}
