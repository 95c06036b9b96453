package commands

import (
	"warehouse/internal/pkg/errs"
)

var (
	ErrNameIsRequired    = errs.NewValueIsRequiredError("name")
	ErrNumberIsRequired  = errs.NewValueIsRequiredError("orderNumber")
	ErrItemsAreRequired  = errs.NewValueIsRequiredError("items")
	ErrCodeIsRequired    = errs.NewValueIsRequiredError("code")
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity")
)
