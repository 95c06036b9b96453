package queries

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PackageView is a package as shown next to its product.
type PackageView struct {
	ID           kernel.UUID
	Barcode      string
	UnitsPerScan int
	Number       string
	Content      string
	WeightKg     *decimal.Decimal
	VolumeM3     *decimal.Decimal
}

// ItemView is an order line with the packages that may be scanned for it.
type ItemView struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	SKU         string
	ProductName string
	Quantity    int
	PickedQty   int
	Packages    []PackageView
}

func toKernel(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toKernelAll(ids ...uuid.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		k, err := toKernel(id)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func nullToPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// loadPackages returns the packages of the given products keyed by product.
func loadPackages(ctx context.Context, db *gorm.DB, productIDs []uuid.UUID) (map[uuid.UUID][]PackageView, error) {
	result := make(map[uuid.UUID][]PackageView, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			barcode,
			units_per_scan,
			package_number,
			content,
			weight_kg,
			volume_m3
		FROM product_packages
		WHERE product_id IN ?
		ORDER BY package_number, barcode
	`, productIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view           PackageView
			id, productID  uuid.UUID
			weight, volume decimal.NullDecimal
		)
		if err = rows.Scan(
			&id,
			&productID,
			&view.Barcode,
			&view.UnitsPerScan,
			&view.Number,
			&view.Content,
			&weight,
			&volume,
		); err != nil {
			return nil, err
		}

		if view.ID, err = toKernel(id); err != nil {
			return nil, err
		}
		view.WeightKg = nullToPtr(weight)
		view.VolumeM3 = nullToPtr(volume)
		result[productID] = append(result[productID], view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// loadItems returns the lines of an order in entry order, each with the
// packages of its product.
func loadItems(ctx context.Context, db *gorm.DB, orderID uuid.UUID) ([]ItemView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			sku,
			product_name,
			quantity,
			picked_qty
		FROM order_items
		WHERE order_id = ?
		ORDER BY line_no
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemView, 0)
	productIDs := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			item          ItemView
			id, productID uuid.UUID
		)
		if err = rows.Scan(
			&id,
			&productID,
			&item.SKU,
			&item.ProductName,
			&item.Quantity,
			&item.PickedQty,
		); err != nil {
			return nil, err
		}

		if item.ID, err = toKernel(id); err != nil {
			return nil, err
		}
		if item.ProductID, err = toKernel(productID); err != nil {
			return nil, err
		}
		items = append(items, item)
		productIDs = append(productIDs, productID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	// release the connection before the next statement
	rows.Close()

	packages, err := loadPackages(ctx, db, productIDs)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Packages = packages[productIDs[i]]
		if items[i].Packages == nil {
			items[i].Packages = []PackageView{}
		}
	}
	return items, nil
}
