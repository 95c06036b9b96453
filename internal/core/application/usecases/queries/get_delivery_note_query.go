package queries

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetDeliveryNoteQueryIsNotConstructed = errors.New(
	"GetDeliveryNoteQuery must be created via NewGetDeliveryNoteQuery constructor",
)

// GetDeliveryNoteQuery builds the printable delivery note of an order.
//
// Example:
//
//	query, _ := NewGetDeliveryNoteQuery(orderID)
//	note, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	err = renderer.Render(w, note)
type GetDeliveryNoteQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDeliveryNoteQuery(orderID kernel.UUID) (GetDeliveryNoteQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryNoteQuery{}, err
	}
	return GetDeliveryNoteQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryNoteQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryNoteQueryIsNotConstructed)
}

func (q GetDeliveryNoteQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetDeliveryNoteQueryHandler reuses the order read model and stamps the
// print time.
type GetDeliveryNoteQueryHandler struct {
	orders GetOrderQueryHandler
	now    func() time.Time
}

func NewGetDeliveryNoteQueryHandler(db *gorm.DB) GetDeliveryNoteQueryHandler {
	return GetDeliveryNoteQueryHandler{orders: NewGetOrderQueryHandler(db), now: time.Now}
}

// Handle returns errs.ErrObjectNotFound for unknown orders.
func (h GetDeliveryNoteQueryHandler) Handle(ctx context.Context, query GetDeliveryNoteQuery) (ports.DeliveryNote, error) {
	if err := query.Validate(); err != nil {
		return ports.DeliveryNote{}, err
	}

	orderQuery, err := NewGetOrderQuery(query.OrderID())
	if err != nil {
		return ports.DeliveryNote{}, err
	}
	o, err := h.orders.Handle(ctx, orderQuery)
	if err != nil {
		return ports.DeliveryNote{}, err
	}

	note := ports.DeliveryNote{
		OrderNumber:       o.Number,
		CustomerName:      o.CustomerName,
		Status:            o.Status.String(),
		FulfillmentStatus: o.FulfillmentStatus.String(),
		PrintedAt:         h.now(),
		Lines:             make([]ports.DeliveryNoteLine, 0, len(o.Items)),
	}
	for _, item := range o.Items {
		note.Lines = append(note.Lines, ports.DeliveryNoteLine{
			ProductName: item.ProductName,
			SKU:         item.SKU,
			PickedQty:   item.PickedQty,
			Quantity:    item.Quantity,
		})
	}
	return note, nil
}
