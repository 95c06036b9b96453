package errs

import (
	"errors"
	"fmt"
)

var (
	ErrBarcodeIsUnknown     = errors.New("barcode is unknown")
	ErrBarcodeIsUnexpected  = errors.New("barcode is not expected on this order")
	ErrBarcodeIsOverScanned = errors.New("barcode is already scanned enough for this order")
)

// BarcodeIsUnknownError reports a barcode no package carries.
type BarcodeIsUnknownError struct {
	Barcode string
}

func NewBarcodeIsUnknownError(barcode string) *BarcodeIsUnknownError {
	return &BarcodeIsUnknownError{Barcode: barcode}
}

func (e *BarcodeIsUnknownError) Error() string {
	return fmt.Sprintf("%s: %s", ErrBarcodeIsUnknown, sanitize(e.Barcode))
}

func (e *BarcodeIsUnknownError) Unwrap() error {
	return ErrBarcodeIsUnknown
}

// BarcodeIsUnexpectedError reports a catalog barcode whose product has no
// line on the order being picked.
type BarcodeIsUnexpectedError struct {
	Barcode     string
	OrderNumber string
}

func NewBarcodeIsUnexpectedError(barcode, orderNumber string) *BarcodeIsUnexpectedError {
	return &BarcodeIsUnexpectedError{Barcode: barcode, OrderNumber: orderNumber}
}

func (e *BarcodeIsUnexpectedError) Error() string {
	return fmt.Sprintf("%s: %s (order %s)", ErrBarcodeIsUnexpected, sanitize(e.Barcode), sanitize(e.OrderNumber))
}

func (e *BarcodeIsUnexpectedError) Unwrap() error {
	return ErrBarcodeIsUnexpected
}

// BarcodeIsOverScannedError reports a barcode that already reached
// Allowed accepted scans for the order.
type BarcodeIsOverScannedError struct {
	Barcode string
	Scanned int
	Allowed int
}

func NewBarcodeIsOverScannedError(barcode string, scanned, allowed int) *BarcodeIsOverScannedError {
	return &BarcodeIsOverScannedError{Barcode: barcode, Scanned: scanned, Allowed: allowed}
}

func (e *BarcodeIsOverScannedError) Error() string {
	return fmt.Sprintf("%s: %s scanned %d of %d", ErrBarcodeIsOverScanned, sanitize(e.Barcode), e.Scanned, e.Allowed)
}

func (e *BarcodeIsOverScannedError) Unwrap() error {
	return ErrBarcodeIsOverScanned
}
