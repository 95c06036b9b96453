// Package kernel holds the value objects shared by the catalog, order and
// pick models.
//
// The package includes:
//   - UUID: identifier of every entity and aggregate
//   - SKU: stock keeping unit identifying a product
//   - Barcode: scannable code identifying one package of a product
//   - Money: non-negative decimal amount used for product prices
//
// Value objects are immutable; their zero values are invalid and fail
// Validate, so always build them through their constructors.
package kernel
