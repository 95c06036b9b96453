package queries

import (
	"context"
	"database/sql"
	"errors"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/pick"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderSummarySQL selects order headers with line totals and the latest
// pick that is not completed. Callers append WHERE and ORDER BY.
const orderSummarySQL = `
	SELECT
		o.id,
		o.order_number,
		o.customer_name,
		o.status,
		o.fulfillment_status,
		o.created_at,
		(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id),
		(SELECT COALESCE(SUM(i.quantity), 0) FROM order_items i WHERE i.order_id = o.id),
		(SELECT COALESCE(SUM(i.picked_qty), 0) FROM order_items i WHERE i.order_id = o.id),
		(SELECT p.id FROM picks p
			WHERE p.order_id = o.id AND p.status <> 'completed'
			ORDER BY p.created_at DESC, p.id DESC LIMIT 1),
		(SELECT p.status FROM picks p
			WHERE p.order_id = o.id AND p.status <> 'completed'
			ORDER BY p.created_at DESC, p.id DESC LIMIT 1)
	FROM orders o
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderSummary(row rowScanner) (OrderSummary, uuid.UUID, error) {
	var (
		summary             OrderSummary
		id                  uuid.UUID
		status, fulfillment string
		openPickID          uuid.NullUUID
		openPickStatus      sql.NullString
	)
	if err := row.Scan(
		&id,
		&summary.Number,
		&summary.CustomerName,
		&status,
		&fulfillment,
		&summary.CreatedAt,
		&summary.ItemCount,
		&summary.Quantity,
		&summary.PickedQty,
		&openPickID,
		&openPickStatus,
	); err != nil {
		return OrderSummary{}, uuid.Nil, err
	}

	var err error
	if summary.ID, err = toKernel(id); err != nil {
		return OrderSummary{}, uuid.Nil, err
	}
	if summary.Status, err = order.ParseStatus(status); err != nil {
		return OrderSummary{}, uuid.Nil, err
	}
	if summary.FulfillmentStatus, err = order.ParseFulfillmentStatus(fulfillment); err != nil {
		return OrderSummary{}, uuid.Nil, err
	}

	if openPickID.Valid {
		ref := &PickRef{}
		if ref.ID, err = toKernel(openPickID.UUID); err != nil {
			return OrderSummary{}, uuid.Nil, err
		}
		if ref.Status, err = pick.ParseStatus(openPickStatus.String); err != nil {
			return OrderSummary{}, uuid.Nil, err
		}
		summary.OpenPick = ref
	}
	return summary, id, nil
}

// ListOrdersQueryHandler lists orders newest first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderSummarySQL + `
		ORDER BY o.created_at DESC, o.order_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		summary, _, err := scanOrderSummary(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderQueryHandler reads one order with its lines.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for unknown orders.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(orderSummarySQL+`
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	summary, id, err := scanOrderSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := loadItems(ctx, h.db, id)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	return GetOrderQueryResponse{OrderSummary: summary, Items: items}, nil
}
