package kernel

import (
	"fmt"
	"strings"
	"unicode"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// MaxBarcodeLength bounds barcodes to what handheld scanners emit.
const MaxBarcodeLength = 128

// ErrBarcodeIsNotConstructed is returned when validating a Barcode literal.
var ErrBarcodeIsNotConstructed = errs.NewValueIsRequiredError("Barcode must be created via NewBarcode")

// Barcode is the scannable code printed on one package of a product.
// Scanners often append a carriage return or pad the code, so NewBarcode
// trims whitespace. A barcode may not contain inner whitespace or control
// characters.
type Barcode struct {
	value string
	guard guard.ConstructorGuard
}

// NewBarcode normalizes and validates a scanned or registered code.
func NewBarcode(v string) (Barcode, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return Barcode{}, errs.NewValueIsRequiredError("barcode")
	}
	if len(v) > MaxBarcodeLength {
		return Barcode{}, errs.NewValueIsOutOfRangeError("barcode length", len(v), 1, MaxBarcodeLength)
	}
	for _, r := range v {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return Barcode{}, errs.NewValueIsInvalidErrorWithCause(
				"barcode",
				fmt.Errorf("%q contains whitespace or control characters", v),
			)
		}
	}
	return Barcode{value: v, guard: guard.NewConstructorGuard()}, nil
}

func (b Barcode) String() string {
	return b.value
}

func (b Barcode) IsEqual(other Barcode) bool {
	return b.value == other.value
}

func (b Barcode) Validate() error {
	return b.guard.Validate(ErrBarcodeIsNotConstructed)
}
