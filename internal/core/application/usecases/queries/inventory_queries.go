package queries

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultMovementLimit caps a stock movement listing without explicit limit.
const DefaultMovementLimit = 100

var (
	ErrListLocationsQueryIsNotConstructed = errors.New(
		"ListLocationsQuery must be created via NewListLocationsQuery constructor",
	)
	ErrListProductLocationsQueryIsNotConstructed = errors.New(
		"ListProductLocationsQuery must be created via NewListProductLocationsQuery constructor",
	)
	ErrListStockMovementsQueryIsNotConstructed = errors.New(
		"ListStockMovementsQuery must be created via NewListStockMovementsQuery constructor",
	)
)

// ListLocationsQuery lists storage bins ordered by code.
type ListLocationsQuery struct {
	guard guard.ConstructorGuard
}

func NewListLocationsQuery() ListLocationsQuery {
	return ListLocationsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListLocationsQuery) Validate() error {
	return q.guard.Validate(ErrListLocationsQueryIsNotConstructed)
}

type LocationView struct {
	ID           kernel.UUID
	Code         string
	Name         string
	ProductCount int
}

// ListProductLocationsQuery lists where one product is stored.
type ListProductLocationsQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListProductLocationsQuery(productID kernel.UUID) (ListProductLocationsQuery, error) {
	if err := productID.Validate(); err != nil {
		return ListProductLocationsQuery{}, err
	}
	return ListProductLocationsQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListProductLocationsQuery) Validate() error {
	return q.guard.Validate(ErrListProductLocationsQueryIsNotConstructed)
}

func (q ListProductLocationsQuery) ProductID() kernel.UUID {
	return q.productID
}

type ProductLocationView struct {
	LocationID kernel.UUID
	Code       string
	Name       string
	OnHand     int
}

// ListStockMovementsQuery lists the movement journal, newest first.
type ListStockMovementsQuery struct {
	productID *kernel.UUID
	limit     int

	guard guard.ConstructorGuard
}

// NewListStockMovementsQuery filters by product when productID is not nil.
// A limit below 1 means DefaultMovementLimit.
func NewListStockMovementsQuery(productID *kernel.UUID, limit int) (ListStockMovementsQuery, error) {
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return ListStockMovementsQuery{}, err
		}
	}
	if limit < 1 {
		limit = DefaultMovementLimit
	}
	return ListStockMovementsQuery{productID: productID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListStockMovementsQuery) Validate() error {
	return q.guard.Validate(ErrListStockMovementsQueryIsNotConstructed)
}

type MovementView struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	SKU       string
	Type      inventory.MovementType
	Quantity  int
	Note      string
	CreatedAt time.Time
}

type ListLocationsQueryHandler struct {
	db *gorm.DB
}

func NewListLocationsQueryHandler(db *gorm.DB) ListLocationsQueryHandler {
	return ListLocationsQueryHandler{db: db}
}

func (h ListLocationsQueryHandler) Handle(ctx context.Context, query ListLocationsQuery) ([]LocationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.code,
			l.name,
			(SELECT COUNT(*) FROM product_locations pl WHERE pl.location_id = l.id)
		FROM locations l
		ORDER BY l.code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]LocationView, 0)
	for rows.Next() {
		var (
			loc LocationView
			id  uuid.UUID
		)
		if err = rows.Scan(&id, &loc.Code, &loc.Name, &loc.ProductCount); err != nil {
			return nil, err
		}
		if loc.ID, err = toKernel(id); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return locations, nil
}

type ListProductLocationsQueryHandler struct {
	db *gorm.DB
}

func NewListProductLocationsQueryHandler(db *gorm.DB) ListProductLocationsQueryHandler {
	return ListProductLocationsQueryHandler{db: db}
}

// Handle returns an empty list for products without placements, including
// unknown products.
func (h ListProductLocationsQueryHandler) Handle(
	ctx context.Context,
	query ListProductLocationsQuery,
) ([]ProductLocationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.code,
			l.name,
			pl.on_hand
		FROM product_locations pl
		JOIN locations l ON l.id = pl.location_id
		WHERE pl.product_id = ?
		ORDER BY l.code
	`, query.ProductID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	placements := make([]ProductLocationView, 0)
	for rows.Next() {
		var (
			view ProductLocationView
			id   uuid.UUID
		)
		if err = rows.Scan(&id, &view.Code, &view.Name, &view.OnHand); err != nil {
			return nil, err
		}
		if view.LocationID, err = toKernel(id); err != nil {
			return nil, err
		}
		placements = append(placements, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return placements, nil
}

type ListStockMovementsQueryHandler struct {
	db *gorm.DB
}

func NewListStockMovementsQueryHandler(db *gorm.DB) ListStockMovementsQueryHandler {
	return ListStockMovementsQueryHandler{db: db}
}

func (h ListStockMovementsQueryHandler) Handle(
	ctx context.Context,
	query ListStockMovementsQuery,
) ([]MovementView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).
		Table("stock_movements m").
		Select("m.id, m.product_id, p.sku, m.type, m.quantity, m.note, m.created_at").
		Joins("JOIN products p ON p.id = m.product_id").
		Order("m.created_at DESC, m.id").
		Limit(query.limit)
	if query.productID != nil {
		stmt = stmt.Where("m.product_id = ?", query.productID.Bytes())
	}

	rows, err := stmt.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]MovementView, 0)
	for rows.Next() {
		var (
			view          MovementView
			id, productID uuid.UUID
			kind          string
		)
		if err = rows.Scan(&id, &productID, &view.SKU, &kind, &view.Quantity, &view.Note, &view.CreatedAt); err != nil {
			return nil, err
		}
		if view.ID, err = toKernel(id); err != nil {
			return nil, err
		}
		if view.ProductID, err = toKernel(productID); err != nil {
			return nil, err
		}
		if view.Type, err = inventory.ParseMovementType(kind); err != nil {
			return nil, err
		}
		movements = append(movements, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return movements, nil
}
