package queries

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
	ErrListPackagesQueryIsNotConstructed = errors.New(
		"ListPackagesQuery must be created via NewListPackagesQuery constructor",
	)
)

// ListProductsQuery retrieves the catalog ordered by SKU.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// ProductView is a catalog product with its packages and the codes of the
// locations it is stored at.
type ProductView struct {
	ID                kernel.UUID
	SKU               string
	Name              string
	Description       string
	MainBarcode       string
	Price             decimal.Decimal
	ExternalProductID string
	ExternalVariantID string
	InventoryQuantity int
	Packages          []PackageView
	Locations         []string
}

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			name,
			description,
			main_barcode,
			price,
			wix_product_id,
			wix_variant_id,
			inventory_quantity
		FROM products
		ORDER BY sku
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductView, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			p  ProductView
			id uuid.UUID
		)
		if err = rows.Scan(
			&id,
			&p.SKU,
			&p.Name,
			&p.Description,
			&p.MainBarcode,
			&p.Price,
			&p.ExternalProductID,
			&p.ExternalVariantID,
			&p.InventoryQuantity,
		); err != nil {
			return nil, err
		}
		if p.ID, err = toKernel(id); err != nil {
			return nil, err
		}
		products = append(products, p)
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	packages, err := loadPackages(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}
	locations, err := h.locationCodes(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		products[i].Packages = packages[ids[i]]
		if products[i].Packages == nil {
			products[i].Packages = []PackageView{}
		}
		products[i].Locations = locations[ids[i]]
		if products[i].Locations == nil {
			products[i].Locations = []string{}
		}
	}
	return products, nil
}

func (h ListProductsQueryHandler) locationCodes(ctx context.Context) (map[uuid.UUID][]string, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT pl.product_id, l.code
		FROM product_locations pl
		JOIN locations l ON l.id = pl.location_id
		ORDER BY l.code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := make(map[uuid.UUID][]string)
	for rows.Next() {
		var (
			productID uuid.UUID
			code      string
		)
		if err = rows.Scan(&productID, &code); err != nil {
			return nil, err
		}
		codes[productID] = append(codes[productID], code)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}

// ListPackagesQuery retrieves the packages of one product.
type ListPackagesQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListPackagesQuery(productID kernel.UUID) (ListPackagesQuery, error) {
	if err := productID.Validate(); err != nil {
		return ListPackagesQuery{}, err
	}
	return ListPackagesQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListPackagesQueryIsNotConstructed)
}

func (q ListPackagesQuery) ProductID() kernel.UUID {
	return q.productID
}

type ListPackagesQueryHandler struct {
	db *gorm.DB
}

func NewListPackagesQueryHandler(db *gorm.DB) ListPackagesQueryHandler {
	return ListPackagesQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for unknown products.
func (h ListPackagesQueryHandler) Handle(ctx context.Context, query ListPackagesQuery) ([]PackageView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	id := query.ProductID().Bytes()
	var n int64
	if err := h.db.WithContext(ctx).Table("products").Where("id = ?", id).Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, errs.NewObjectNotFoundError("product", query.ProductID().String())
	}

	packages, err := loadPackages(ctx, h.db, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if packages[id] == nil {
		return []PackageView{}, nil
	}
	return packages[id], nil
}
