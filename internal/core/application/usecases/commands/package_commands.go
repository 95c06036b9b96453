package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddPackageCommandIsNotConstructed = errors.New(
		"AddPackageCommand must be created via NewAddPackageCommand constructor",
	)
	ErrRemovePackageCommandIsNotConstructed = errors.New(
		"RemovePackageCommand must be created via NewRemovePackageCommand constructor",
	)
)

// PackageFields describe a package as entered by an operator. Weight and
// volume are decimal strings; empty means unknown.
type PackageFields struct {
	Barcode      string
	UnitsPerScan int
	Number       string
	Content      string
	WeightKg     string
	VolumeM3     string
}

// AddPackageCommand attaches a scannable package to a product.
type AddPackageCommand struct { //nolint:recvcheck //using for validation
	packageID    kernel.UUID
	productID    kernel.UUID
	barcode      kernel.Barcode
	unitsPerScan int
	details      catalog.PackageDetails

	guard guard.ConstructorGuard
}

// NewAddPackageCommand validates the fields. UnitsPerScan 0 defaults to 1.
func NewAddPackageCommand(packageID kernel.UUID, productID kernel.UUID, fields PackageFields) (AddPackageCommand, error) {
	barcode, barcodeErr := kernel.NewBarcode(fields.Barcode)
	weight, weightErr := optionalDecimal("weightKg", fields.WeightKg)
	volume, volumeErr := optionalDecimal("volumeM3", fields.VolumeM3)

	units := fields.UnitsPerScan
	if units == 0 {
		units = 1
	}

	if err := errors.Join(
		packageID.Validate(),
		productID.Validate(),
		barcodeErr,
		weightErr,
		volumeErr,
	); err != nil {
		return AddPackageCommand{}, err
	}

	return AddPackageCommand{
		packageID:    packageID,
		productID:    productID,
		barcode:      barcode,
		unitsPerScan: units,
		details: catalog.PackageDetails{
			Number:   fields.Number,
			Content:  fields.Content,
			WeightKg: weight,
			VolumeM3: volume,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AddPackageCommand) Validate() error {
	return c.guard.Validate(ErrAddPackageCommandIsNotConstructed)
}

func (c AddPackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c AddPackageCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c AddPackageCommand) Barcode() kernel.Barcode {
	return c.barcode
}

func (c AddPackageCommand) UnitsPerScan() int {
	return c.unitsPerScan
}

func (c AddPackageCommand) Details() catalog.PackageDetails {
	return c.details
}

// RemovePackageCommand detaches a package from its product.
type RemovePackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemovePackageCommand(packageID kernel.UUID) (RemovePackageCommand, error) {
	if err := packageID.Validate(); err != nil {
		return RemovePackageCommand{}, err
	}
	return RemovePackageCommand{packageID: packageID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemovePackageCommand) Validate() error {
	return c.guard.Validate(ErrRemovePackageCommandIsNotConstructed)
}

func (c RemovePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

func optionalDecimal(name, s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &d, nil
}
