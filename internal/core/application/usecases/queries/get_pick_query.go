// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models built with plain SQL, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/pick"
	"warehouse/internal/pkg/guard"
)

var ErrGetPickQueryIsNotConstructed = errors.New(
	"GetPickQuery must be created via NewGetPickQuery constructor",
)

// GetPickQuery retrieves everything a scanning station displays for one
// pick session.
//
// Example:
//
//	query, err := NewGetPickQuery(pickID)
//	if err != nil {
//	    return err
//	}
//	detail, err := handler.Handle(ctx, query)
//	for _, item := range detail.Items {
//	    fmt.Printf("%s %d/%d\n", item.SKU, item.PickedQty, item.Quantity)
//	}
type GetPickQuery struct {
	pickID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPickQuery creates a query for one pick.
func NewGetPickQuery(pickID kernel.UUID) (GetPickQuery, error) {
	if err := pickID.Validate(); err != nil {
		return GetPickQuery{}, err
	}
	return GetPickQuery{pickID: pickID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickQuery) Validate() error {
	return q.guard.Validate(ErrGetPickQueryIsNotConstructed)
}

func (q GetPickQuery) PickID() kernel.UUID {
	return q.pickID
}

// PickView is the header of a pick session.
type PickView struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Status    pick.Status
	CreatedAt time.Time
}

// OrderView is the header of an order.
type OrderView struct {
	ID                kernel.UUID
	Number            string
	CustomerName      string
	Status            order.Status
	FulfillmentStatus order.FulfillmentStatus
	CreatedAt         time.Time
}

// ScanView is one accepted scan.
type ScanView struct {
	ID          kernel.UUID
	OrderItemID kernel.UUID
	ProductID   kernel.UUID
	PackageID   kernel.UUID
	Barcode     string
	ScannedAt   time.Time
}

// GetPickQueryResponse holds the pick, its order with every line and the
// scans recorded by this pick. Scans of other picks of the same order count
// towards PickedQty but are not listed.
type GetPickQueryResponse struct {
	Pick  PickView
	Order OrderView
	Items []ItemView
	Scans []ScanView
}
