package inventory

import (
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation")

// MaxLocationCodeLength bounds bin codes such as "A-01-03".
const MaxLocationCodeLength = 64

// Location is a storage bin identified by a unique code.
type Location struct {
	id   kernel.UUID
	code string
	name string

	isConstructed bool
}

func NewLocation(id kernel.UUID, code string, name string) (*Location, error) {
	code = strings.TrimSpace(code)

	var codeErr error
	switch {
	case code == "":
		codeErr = errs.NewValueIsRequiredError("code")
	case len(code) > MaxLocationCodeLength:
		codeErr = errs.NewValueIsOutOfRangeError("code.length", len(code), 1, MaxLocationCodeLength)
	}

	if err := errors.Join(id.Validate(), codeErr); err != nil {
		return nil, err
	}

	return &Location{
		id:            id,
		code:          code,
		name:          strings.TrimSpace(name),
		isConstructed: true,
	}, nil
}

func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

func (l *Location) ID() kernel.UUID {
	return l.id
}

func (l *Location) Code() string {
	return l.code
}

func (l *Location) Name() string {
	return l.name
}

// Placement is the on-hand count of one product at one location. There is
// at most one placement per (product, location) pair.
type Placement struct {
	productID  kernel.UUID
	locationID kernel.UUID
	onHand     int
}

func NewPlacement(productID kernel.UUID, locationID kernel.UUID, onHand int) (Placement, error) {
	var onHandErr error
	if onHand < 0 {
		onHandErr = errs.NewValueIsInvalidErrorWithCause("onHand", fmt.Errorf("%d is negative", onHand))
	}
	if err := errors.Join(productID.Validate(), locationID.Validate(), onHandErr); err != nil {
		return Placement{}, err
	}
	return Placement{productID: productID, locationID: locationID, onHand: onHand}, nil
}

func (p Placement) ProductID() kernel.UUID {
	return p.productID
}

func (p Placement) LocationID() kernel.UUID {
	return p.locationID
}

func (p Placement) OnHand() int {
	return p.onHand
}
