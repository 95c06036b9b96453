package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Open ──> Fulfilled
//
// Fulfilled is reached when the last item is fully picked. There is no way
// back to Open through this package.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusOpen is the status of every order that still needs picking.
	StatusOpen

	// StatusFulfilled indicates every item has been picked.
	StatusFulfilled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusOpen:      "open",
		StatusFulfilled: "fulfilled",
	}
}

// ParseStatus converts a persisted or external value into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: StatusOpen, StatusFulfilled.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s != StatusOpen && s != StatusFulfilled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns "open", "fulfilled" or "unknown". It is the persisted
// representation.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// FulfillmentStatus is the progress marker an operator sets while working on
// an order. FulfillmentNone means no marker was ever set.
//
// Transitions are unconditional:
//
//	any ──markPartial──> PartiallyFulfilled
//	any ──reset────────> NotFulfilled
//
// Fulfilled is normally implicit in StatusFulfilled; it is only stored
// explicitly for orders imported already fulfilled.
type FulfillmentStatus int

const (
	FulfillmentNone FulfillmentStatus = iota
	FulfillmentNotFulfilled
	FulfillmentPartiallyFulfilled
	FulfillmentFulfilled
)

func getFulfillmentStrings() map[FulfillmentStatus]string {
	return map[FulfillmentStatus]string{
		FulfillmentNone:               "",
		FulfillmentNotFulfilled:       "NOT_FULFILLED",
		FulfillmentPartiallyFulfilled: "PARTIALLY_FULFILLED",
		FulfillmentFulfilled:          "FULFILLED",
	}
}

// ParseFulfillmentStatus converts a persisted value. The empty string is
// FulfillmentNone.
func ParseFulfillmentStatus(s string) (FulfillmentStatus, error) {
	for status, str := range getFulfillmentStrings() {
		if str == s {
			return status, nil
		}
	}
	return FulfillmentNone, errs.NewValueIsInvalidErrorWithCause(
		"fulfillmentStatus",
		fmt.Errorf("%q is not a valid fulfillment status", s),
	)
}

func (s FulfillmentStatus) Validate() error {
	if _, ok := getFulfillmentStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("fulfillmentStatus", fmt.Errorf("%d is not a valid fulfillment status", s))
	}
	return nil
}

// String returns the persisted representation; FulfillmentNone is "".
func (s FulfillmentStatus) String() string {
	return getFulfillmentStrings()[s]
}
