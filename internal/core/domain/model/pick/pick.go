package pick

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
)

var ErrPickIsNotConstructed = errors.New("Pick must be created via NewPick or RestorePick constructors")

// Pick is an operator session against a single order.
//
// Pick does not keep counters: how much of the order is picked is derived
// from the scan log of the whole order.
type Pick struct {
	id        kernel.UUID
	orderID   kernel.UUID
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewPick starts a session in StatusActive.
func NewPick(id kernel.UUID, orderID kernel.UUID, createdAt time.Time) (*Pick, error) {
	return RestorePick(id, orderID, StatusActive, createdAt)
}

// RestorePick rebuilds a persisted session.
func RestorePick(id kernel.UUID, orderID kernel.UUID, status Status, createdAt time.Time) (*Pick, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Pick{
		id:            id,
		orderID:       orderID,
		status:        status,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (p *Pick) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPickIsNotConstructed
	}
	return nil
}

func (p *Pick) ID() kernel.UUID {
	return p.id
}

func (p *Pick) OrderID() kernel.UUID {
	return p.orderID
}

func (p *Pick) Status() Status {
	return p.status
}

func (p *Pick) CreatedAt() time.Time {
	return p.createdAt
}

// MarkPartial records that the operator left before the order was done.
// Allowed from any status.
func (p *Pick) MarkPartial() {
	p.status = StatusPartial
}

// Complete is applied to the pick whose scan picked the last set of the
// order.
func (p *Pick) Complete() {
	p.status = StatusCompleted
}

// Reset returns the pick to StatusPending. Removing its scans is the
// caller's job.
func (p *Pick) Reset() {
	p.status = StatusPending
}
