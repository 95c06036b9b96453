package pick

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status is the state of a pick session.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusActive
	StatusPartial
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusActive:    "active",
		StatusPartial:   "partial",
		StatusCompleted: "completed",
	}
}

// ParseStatus converts a persisted value into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid pick status", s))
}

func (s Status) Validate() error {
	if s < StatusPending || s > StatusCompleted {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid pick status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
