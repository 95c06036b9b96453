// Package order provides the Order aggregate: a customer order made of
// order items, each requesting a quantity of one catalog product.
//
// The package includes:
//   - Order: the aggregate root that owns its items and its two statuses
//   - Item: one order line with its requested and picked quantity
//   - Status: the order lifecycle, Open -> Fulfilled
//   - FulfillmentStatus: the operator facing progress marker
//
// Key business rules:
//   - Order numbers are unique (enforced by the store)
//   - An order has at most one item per product
//   - 0 <= picked quantity <= quantity for every item
//   - An order is fulfilled if and only if every item is fully picked
//
// Picked quantities are derived from the scan log by the scan verifier;
// the aggregate only guards their range.
package order
