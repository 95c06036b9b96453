// Package services provides domain services that implement business rules
// spanning several aggregates of the warehouse: catalog products, orders and
// pick sessions.
//
// The package includes:
//   - ScanVerifier: decides whether a scanned barcode is acceptable for an
//     order and recomputes the order's progress from the scan log
//
// Services in this package are pure. They never load or store anything;
// the application layer feeds them the current state and the scan counts
// it read inside the order's critical section.
package services
