package orderrepo

import (
	"context"

	"warehouse/internal/adapters/out/storage/gormerr"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return gormerr.Translate(err, "order", dto.OrderNumber)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. Items are upserted by id; the creation
// time of the order is never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"customer_name":      dto.CustomerName,
		"status":             dto.Status,
		"fulfillment_status": dto.FulfillmentStatus,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gormerr.Translate(gorm.ErrRecordNotFound, "order", aggregate.ID().String())
	}

	if err := upsertItems(db, dto.Items, "sku", "product_name", "quantity", "picked_qty"); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateDetails saves the imported fields of an existing order. Order
// statuses and stored picked quantities are never written; new items are
// inserted as they are.
func (r *GormOrderRepository) UpdateDetails(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Update("customer_name", dto.CustomerName)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gormerr.Translate(gorm.ErrRecordNotFound, "order", aggregate.ID().String())
	}

	if err := upsertItems(db, dto.Items, "sku", "product_name", "quantity"); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func upsertItems(db *gorm.DB, items []OrderItemDTO, columns ...string) error {
	for _, item := range items {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).Create(&item).Error
		if err != nil {
			return gormerr.Translate(err, "orderItem", item.SKU)
		}
	}
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, r.db, id.String(), "id = ?", id.Bytes())
}

// GetForUpdate retrieves an order by ID and locks its row until the
// transaction ends. The lock is only taken on PostgreSQL; SQLite has a
// single writer and no row locks.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return r.first(ctx, db, id.String(), "id = ?", id.Bytes())
}

// GetByNumber retrieves an order by its order number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	return r.first(ctx, r.db, number, "order_number = ?", number)
}

func (r *GormOrderRepository) first(ctx context.Context, db *gorm.DB, key string, query string, args ...any) (*order.Order, error) {
	var dto OrderDTO
	err := db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("line_no") }).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		return nil, gormerr.Translate(err, "order", key)
	}
	return toDomain(dto)
}
