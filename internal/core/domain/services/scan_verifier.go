package services

import (
	"errors"
	"math"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/pick"
	"warehouse/internal/pkg/errs"
)

// Progress is the outcome of an accepted scan.
type Progress struct {
	// OrderItemID is the order line the scan counted for.
	OrderItemID kernel.UUID

	// PickedQty is the number of complete sets after the scan.
	PickedQty int

	// Quantity is the number of requested sets.
	Quantity int

	// TotalScans is the number of scans of the order line across all picks.
	TotalScans int

	// ScansPerSet is the number of scans one set needs.
	ScansPerSet int

	// OrderCompleted reports whether the order is fulfilled after the scan.
	OrderCompleted bool
}

// ScanVerifier implements the scan acceptance algorithm.
//
// A scan of barcode b against pick p of order o is processed in three steps,
// with I/O done by the caller between them:
//
//  1. Match resolves the order line the package of b belongs to
//  2. Admit checks the barcode's allowance against the scans already
//     recorded for that line and barcode across every pick of o
//  3. after the caller recorded the scan and recounted the line's scans,
//     Settle derives the picked sets and closes the order when every line
//     is complete
//
// Known aggregation artifact: picked sets are derived from the total number
// of scans of a line, not from their composition. A product with packages
// B1 (unitsPerScan 1) and B2 (unitsPerScan 1) ordered twice allows B1 to be
// scanned twice; those two scans alone count as one complete set.
//
// Example usage:
//
//	verifier := services.NewScanVerifier()
//	item, err := verifier.Match(o, barcode, pkg)
//	if err != nil {
//	    return err
//	}
//	if err := verifier.Admit(item, pkg, scannedForBarcode); err != nil {
//	    return err // errs.ErrBarcodeIsOverScanned
//	}
//	// record the scan, recount
//	progress, err := verifier.Settle(o, p, item, product, totalScans)
type ScanVerifier struct{}

// NewScanVerifier creates a new ScanVerifier instance.
func NewScanVerifier() ScanVerifier {
	return ScanVerifier{}
}

// Match returns the order line of the scanned package's product.
//
// Parameters:
//   - o: The order of the pick
//   - barcode: The scanned barcode
//   - pkg: The package found for barcode, or nil when none exists
//
// Returns:
//   - *order.Item: The order line the scan will count for
//   - error: errs.ErrBarcodeIsUnknown when pkg is nil,
//     errs.ErrBarcodeIsUnexpected when the order has no line for the product
func (v ScanVerifier) Match(o *order.Order, barcode kernel.Barcode, pkg *catalog.Package) (*order.Item, error) {
	if err := errors.Join(o.Validate(), barcode.Validate()); err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, errs.NewBarcodeIsUnknownError(barcode.String())
	}
	if err := pkg.Validate(); err != nil {
		return nil, err
	}

	item, ok := o.ItemForProduct(pkg.ProductID())
	if !ok {
		return nil, errs.NewBarcodeIsUnexpectedError(barcode.String(), o.Number())
	}
	return item, nil
}

// Admit checks whether one more scan of pkg's barcode is allowed for item.
//
// A barcode may be scanned unitsPerScan × quantity times for an order line.
// scannedCount is the number of scans already recorded for the line and this
// exact barcode, across every pick of the order.
//
// Returns errs.ErrBarcodeIsOverScanned when the allowance is used up.
func (v ScanVerifier) Admit(item *order.Item, pkg *catalog.Package, scannedCount int) error {
	if err := errors.Join(item.Validate(), pkg.Validate()); err != nil {
		return err
	}
	if scannedCount < 0 {
		return errs.NewValueIsOutOfRangeError("scannedCount", scannedCount, 0, math.MaxInt)
	}

	allowed := AllowedScans(pkg.UnitsPerScan(), item.Quantity())
	if scannedCount >= allowed {
		return errs.NewBarcodeIsOverScannedError(pkg.Barcode().String(), scannedCount, allowed)
	}
	return nil
}

// Settle recomputes the line's picked sets from totalScans, the number of
// scans of the line across every pick of the order including the one just
// recorded. When every line of o is fully picked, o becomes fulfilled and p,
// the pick that recorded the scan, becomes completed.
//
// Parameters:
//   - o: The order, item must be one of its lines
//   - p: The pick the scan was recorded in
//   - item: The line returned by Match
//   - product: The line's product with all of its packages
//   - totalScans: Scans of the line after recording
//
// Returns:
//   - Progress: The new state of the line and the order
//   - error: catalog.ErrProductHasNoPackages, or validation errors
func (v ScanVerifier) Settle(
	o *order.Order,
	p *pick.Pick,
	item *order.Item,
	product *catalog.Product,
	totalScans int,
) (Progress, error) {
	if err := errors.Join(o.Validate(), p.Validate(), item.Validate(), product.Validate()); err != nil {
		return Progress{}, err
	}
	if !p.OrderID().IsEqual(o.ID()) {
		return Progress{}, errs.NewValueIsInvalidError("pick.orderID")
	}
	if !item.ProductID().IsEqual(product.ID()) {
		return Progress{}, errs.NewValueIsInvalidError("item.productID")
	}
	if totalScans < 0 {
		return Progress{}, errs.NewValueIsOutOfRangeError("totalScans", totalScans, 0, math.MaxInt)
	}

	scansPerSet, err := product.ScansPerSet()
	if err != nil {
		return Progress{}, err
	}

	picked := PickedSets(item.Quantity(), totalScans, scansPerSet)
	if err := o.RecordPickedSets(item.ID(), picked); err != nil {
		return Progress{}, err
	}

	completed := o.CompleteIfFullyPicked()
	if completed {
		p.Complete()
	}

	return Progress{
		OrderItemID:    item.ID(),
		PickedQty:      picked,
		Quantity:       item.Quantity(),
		TotalScans:     totalScans,
		ScansPerSet:    scansPerSet,
		OrderCompleted: completed,
	}, nil
}

// AllowedScans is how many times one barcode may be scanned for an order
// line: unitsPerScan × quantity.
func AllowedScans(unitsPerScan, quantity int) int {
	return unitsPerScan * quantity
}

// PickedSets is min(quantity, totalScans / scansPerSet) with integer floor
// division. scansPerSet must be positive.
func PickedSets(quantity, totalScans, scansPerSet int) int {
	return min(quantity, totalScans/scansPerSet)
}
