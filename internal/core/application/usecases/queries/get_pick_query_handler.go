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

// GetPickQueryHandler reads a pick session with its order.
type GetPickQueryHandler struct {
	db *gorm.DB
}

// NewGetPickQueryHandler creates a handler for pick detail queries.
func NewGetPickQueryHandler(db *gorm.DB) GetPickQueryHandler {
	return GetPickQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for unknown picks.
func (h GetPickQueryHandler) Handle(ctx context.Context, query GetPickQuery) (GetPickQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPickQueryResponse{}, err
	}

	var (
		resp                    GetPickQueryResponse
		pickID, orderID         uuid.UUID
		pickStatus, orderStatus string
		fulfillmentStatus       string
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.status,
			p.created_at,
			o.id,
			o.order_number,
			o.customer_name,
			o.status,
			o.fulfillment_status,
			o.created_at
		FROM picks p
		JOIN orders o ON o.id = p.order_id
		WHERE p.id = ?
	`, query.PickID().Bytes()).Row().Scan(
		&pickID,
		&pickStatus,
		&resp.Pick.CreatedAt,
		&orderID,
		&resp.Order.Number,
		&resp.Order.CustomerName,
		&orderStatus,
		&fulfillmentStatus,
		&resp.Order.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPickQueryResponse{}, errs.NewObjectNotFoundError("pick", query.PickID().String())
	}
	if err != nil {
		return GetPickQueryResponse{}, err
	}

	resp.Pick.ID = query.PickID()
	if resp.Pick.Status, err = pick.ParseStatus(pickStatus); err != nil {
		return GetPickQueryResponse{}, err
	}
	if resp.Order.ID, err = toKernel(orderID); err != nil {
		return GetPickQueryResponse{}, err
	}
	resp.Pick.OrderID = resp.Order.ID
	if resp.Order.Status, err = order.ParseStatus(orderStatus); err != nil {
		return GetPickQueryResponse{}, err
	}
	if resp.Order.FulfillmentStatus, err = order.ParseFulfillmentStatus(fulfillmentStatus); err != nil {
		return GetPickQueryResponse{}, err
	}

	if resp.Items, err = loadItems(ctx, h.db, orderID); err != nil {
		return GetPickQueryResponse{}, err
	}
	if resp.Scans, err = h.scans(ctx, pickID); err != nil {
		return GetPickQueryResponse{}, err
	}
	return resp, nil
}

func (h GetPickQueryHandler) scans(ctx context.Context, pickID uuid.UUID) ([]ScanView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_item_id,
			product_id,
			package_id,
			barcode,
			scanned_at
		FROM pick_scans
		WHERE pick_id = ?
		ORDER BY scanned_at, id
	`, pickID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scans := make([]ScanView, 0)
	for rows.Next() {
		var (
			scan                             ScanView
			id, itemID, productID, packageID uuid.UUID
		)
		if err = rows.Scan(&id, &itemID, &productID, &packageID, &scan.Barcode, &scan.ScannedAt); err != nil {
			return nil, err
		}

		ids, err := toKernelAll(id, itemID, productID, packageID)
		if err != nil {
			return nil, err
		}
		scan.ID, scan.OrderItemID, scan.ProductID, scan.PackageID = ids[0], ids[1], ids[2], ids[3]
		scans = append(scans, scan)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return scans, nil
}
