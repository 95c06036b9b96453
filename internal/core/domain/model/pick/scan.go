package pick

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
)

var ErrScanIsNotConstructed = errors.New("Scan must be created via NewScan")

// Scan is one accepted barcode read. It holds the references a count query
// needs: the pick that recorded it, the order line it counts for and the
// package that was scanned.
type Scan struct {
	id          kernel.UUID
	pickID      kernel.UUID
	orderItemID kernel.UUID
	productID   kernel.UUID
	packageID   kernel.UUID
	barcode     kernel.Barcode
	scannedAt   time.Time

	isConstructed bool
}

// ScanRefs groups the identifiers a scan points to.
type ScanRefs struct {
	PickID      kernel.UUID
	OrderItemID kernel.UUID
	ProductID   kernel.UUID
	PackageID   kernel.UUID
}

func NewScan(id kernel.UUID, refs ScanRefs, barcode kernel.Barcode, scannedAt time.Time) (*Scan, error) {
	if err := errors.Join(
		id.Validate(),
		refs.PickID.Validate(),
		refs.OrderItemID.Validate(),
		refs.ProductID.Validate(),
		refs.PackageID.Validate(),
		barcode.Validate(),
	); err != nil {
		return nil, err
	}

	return &Scan{
		id:            id,
		pickID:        refs.PickID,
		orderItemID:   refs.OrderItemID,
		productID:     refs.ProductID,
		packageID:     refs.PackageID,
		barcode:       barcode,
		scannedAt:     scannedAt.UTC(),
		isConstructed: true,
	}, nil
}

func (s *Scan) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrScanIsNotConstructed
	}
	return nil
}

func (s *Scan) ID() kernel.UUID {
	return s.id
}

func (s *Scan) PickID() kernel.UUID {
	return s.pickID
}

func (s *Scan) OrderItemID() kernel.UUID {
	return s.orderItemID
}

func (s *Scan) ProductID() kernel.UUID {
	return s.productID
}

func (s *Scan) PackageID() kernel.UUID {
	return s.packageID
}

func (s *Scan) Barcode() kernel.Barcode {
	return s.barcode
}

func (s *Scan) ScannedAt() time.Time {
	return s.scannedAt
}
