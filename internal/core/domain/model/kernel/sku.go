package kernel

import (
	"strings"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrSKUIsNotConstructed is returned when validating a SKU literal.
var ErrSKUIsNotConstructed = errs.NewValueIsRequiredError("SKU must be created via NewSKU")

// SKU is the stock keeping unit of a product. Surrounding whitespace is
// trimmed; the value is compared case-sensitively because external catalogs
// issue SKUs that differ only in case.
type SKU struct {
	value string
	guard guard.ConstructorGuard
}

// NewSKU trims v and rejects empty values.
func NewSKU(v string) (SKU, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return SKU{}, errs.NewValueIsRequiredError("sku")
	}
	return SKU{value: v, guard: guard.NewConstructorGuard()}, nil
}

func (s SKU) String() string {
	return s.value
}

func (s SKU) IsEqual(other SKU) bool {
	return s.value == other.value
}

func (s SKU) Validate() error {
	return s.guard.Validate(ErrSKUIsNotConstructed)
}
