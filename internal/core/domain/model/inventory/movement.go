package inventory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// MovementType is the direction of a stock movement.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// ParseMovementType accepts "IN" and "OUT" in any case.
func ParseMovementType(s string) (MovementType, error) {
	switch t := MovementType(strings.ToUpper(strings.TrimSpace(s))); t {
	case MovementIn, MovementOut:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not IN or OUT", s))
	}
}

var ErrMovementIsNotConstructed = errors.New("Movement must be created via NewMovement or RestoreMovement")

// Movement is one journal entry of goods received or shipped.
type Movement struct {
	id        kernel.UUID
	productID kernel.UUID
	kind      MovementType
	quantity  int
	note      string
	createdAt time.Time

	isConstructed bool
}

func NewMovement(
	id kernel.UUID,
	productID kernel.UUID,
	kind MovementType,
	quantity int,
	note string,
	createdAt time.Time,
) (*Movement, error) {
	var kindErr, qtyErr error
	if kind != MovementIn && kind != MovementOut {
		kindErr = errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not IN or OUT", kind))
	}
	if quantity < 1 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(id.Validate(), productID.Validate(), kindErr, qtyErr); err != nil {
		return nil, err
	}

	return &Movement{
		id:            id,
		productID:     productID,
		kind:          kind,
		quantity:      quantity,
		note:          strings.TrimSpace(note),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (m *Movement) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMovementIsNotConstructed
	}
	return nil
}

func (m *Movement) ID() kernel.UUID {
	return m.id
}

func (m *Movement) ProductID() kernel.UUID {
	return m.productID
}

func (m *Movement) Type() MovementType {
	return m.kind
}

func (m *Movement) Quantity() int {
	return m.quantity
}

func (m *Movement) Note() string {
	return m.note
}

func (m *Movement) CreatedAt() time.Time {
	return m.createdAt
}
