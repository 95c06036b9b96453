// Package catalog models the products a warehouse ships and the physical
// packages each product is split into.
//
// The package includes:
//   - Product: the aggregate root identified by a unique SKU
//   - Package: one scannable box of a product, identified by a globally
//     unique barcode and scanned UnitsPerScan times per set
//
// A product with packages P1..Pn needs ScansPerSet = Σ UnitsPerScan(Pi)
// accepted scans to complete one set. During picking the catalog is only
// read; it is written by catalog maintenance and the external catalog sync.
package catalog
