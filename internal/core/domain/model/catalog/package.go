package catalog

import (
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage constructors")

// PackageDetails holds the descriptive, optional attributes of a package.
// Weight is in kilograms and volume in cubic metres.
type PackageDetails struct {
	Number   string
	Content  string
	WeightKg *decimal.Decimal
	VolumeM3 *decimal.Decimal
}

// Package is one physically distinct, scannable unit of a product.
//
// Invariants:
//   - barcode is valid (global uniqueness is enforced by the store)
//   - unitsPerScan >= 1
//   - weight and volume, when set, are not negative
type Package struct {
	id           kernel.UUID
	productID    kernel.UUID
	barcode      kernel.Barcode
	unitsPerScan int
	details      PackageDetails

	isConstructed bool
}

// NewPackage creates a package of the given product.
func NewPackage(
	id kernel.UUID,
	productID kernel.UUID,
	barcode kernel.Barcode,
	unitsPerScan int,
	details PackageDetails,
) (*Package, error) {
	p := &Package{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setProductID(productID),
		p.setBarcode(barcode),
		p.setUnitsPerScan(unitsPerScan),
		p.setDetails(details),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage rebuilds a persisted package, re-checking every invariant.
func RestorePackage(
	id kernel.UUID,
	productID kernel.UUID,
	barcode kernel.Barcode,
	unitsPerScan int,
	details PackageDetails,
) (*Package, error) {
	return NewPackage(id, productID, barcode, unitsPerScan, details)
}

func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

func (p *Package) ID() kernel.UUID {
	return p.id
}

func (p *Package) ProductID() kernel.UUID {
	return p.productID
}

func (p *Package) Barcode() kernel.Barcode {
	return p.barcode
}

// UnitsPerScan is how many product units one scan of this barcode stands for.
func (p *Package) UnitsPerScan() int {
	return p.unitsPerScan
}

func (p *Package) Details() PackageDetails {
	return p.details
}

// Name is the human readable label: content when known, otherwise number,
// otherwise the barcode.
func (p *Package) Name() string {
	switch {
	case p.details.Content != "":
		return p.details.Content
	case p.details.Number != "":
		return p.details.Number
	default:
		return p.barcode.String()
	}
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.productID = id
	return nil
}

func (p *Package) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}
	p.barcode = barcode
	return nil
}

func (p *Package) setUnitsPerScan(units int) error {
	if units < 1 {
		return errs.NewValueIsInvalidErrorWithCause("unitsPerScan", fmt.Errorf("%d is not greater than 0", units))
	}
	p.unitsPerScan = units
	return nil
}

func (p *Package) setDetails(d PackageDetails) error {
	if d.WeightKg != nil && d.WeightKg.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("weightKg", fmt.Errorf("%s is negative", d.WeightKg))
	}
	if d.VolumeM3 != nil && d.VolumeM3.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("volumeM3", fmt.Errorf("%s is negative", d.VolumeM3))
	}
	d.Number = strings.TrimSpace(d.Number)
	d.Content = strings.TrimSpace(d.Content)
	p.details = d
	return nil
}
