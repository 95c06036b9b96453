package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrScanBarcodeCommandIsNotConstructed = errors.New(
	"ScanBarcodeCommand must be created via NewScanBarcodeCommand constructor",
)

// ScanBarcodeCommand submits one barcode read for a pick.
type ScanBarcodeCommand struct { //nolint:recvcheck //using for validation
	scanID  kernel.UUID
	pickID  kernel.UUID
	barcode kernel.Barcode

	guard guard.ConstructorGuard
}

// NewScanBarcodeCommand validates the identifiers and the raw barcode. An
// empty or malformed barcode fails with a value error.
func NewScanBarcodeCommand(scanID kernel.UUID, pickID kernel.UUID, rawBarcode string) (ScanBarcodeCommand, error) {
	barcode, barcodeErr := kernel.NewBarcode(rawBarcode)
	if err := errors.Join(scanID.Validate(), pickID.Validate(), barcodeErr); err != nil {
		return ScanBarcodeCommand{}, err
	}

	return ScanBarcodeCommand{
		scanID:  scanID,
		pickID:  pickID,
		barcode: barcode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ScanBarcodeCommand) Validate() error {
	return c.guard.Validate(ErrScanBarcodeCommandIsNotConstructed)
}

func (c ScanBarcodeCommand) ScanID() kernel.UUID {
	return c.scanID
}

func (c ScanBarcodeCommand) PickID() kernel.UUID {
	return c.pickID
}

func (c ScanBarcodeCommand) Barcode() kernel.Barcode {
	return c.barcode
}
