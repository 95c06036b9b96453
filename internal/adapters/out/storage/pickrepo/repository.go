package pickrepo

import (
	"context"

	"warehouse/internal/adapters/out/storage/gormerr"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/pick"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormPickRepository implements PickRepository using GORM.
type GormPickRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormPickRepository(db *gorm.DB, tracker aggregateTracker) *GormPickRepository {
	return &GormPickRepository{db: db, tracker: tracker}
}

func (r *GormPickRepository) Add(ctx context.Context, aggregate *pick.Pick) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := pickFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return gormerr.Translate(err, "pick", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the pick status; nothing else of a pick changes.
func (r *GormPickRepository) Update(ctx context.Context, aggregate *pick.Pick) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&PickDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gormerr.Translate(gorm.ErrRecordNotFound, "pick", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPickRepository) Get(ctx context.Context, id kernel.UUID) (*pick.Pick, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, gormerr.Translate(err, "pick", id.String())
	}
	return pickToDomain(dto)
}

// GormScanRepository implements ScanRepository using GORM.
type GormScanRepository struct {
	db *gorm.DB
}

func NewGormScanRepository(db *gorm.DB) *GormScanRepository {
	return &GormScanRepository{db: db}
}

func (r *GormScanRepository) Add(ctx context.Context, scan *pick.Scan) error {
	if err := scan.Validate(); err != nil {
		return err
	}

	dto := scanFromDomain(scan)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return gormerr.Translate(err, "scan", scan.ID().String())
	}
	return nil
}

func (r *GormScanRepository) CountByOrderItem(ctx context.Context, orderItemID kernel.UUID) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&ScanDTO{}).
		Where("order_item_id = ?", orderItemID.Bytes()).
		Count(&n).Error
	return int(n), err
}

func (r *GormScanRepository) CountByOrderItemAndBarcode(
	ctx context.Context,
	orderItemID kernel.UUID,
	barcode kernel.Barcode,
) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&ScanDTO{}).
		Where("order_item_id = ? AND barcode = ?", orderItemID.Bytes(), barcode.String()).
		Count(&n).Error
	return int(n), err
}

func (r *GormScanRepository) ListByPick(ctx context.Context, pickID kernel.UUID) ([]*pick.Scan, error) {
	var dtos []ScanDTO
	if err := r.db.WithContext(ctx).
		Where("pick_id = ?", pickID.Bytes()).
		Order("scanned_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	scans := make([]*pick.Scan, 0, len(dtos))
	for _, dto := range dtos {
		s, err := scanToDomain(dto)
		if err != nil {
			return nil, err
		}
		scans = append(scans, s)
	}
	return scans, nil
}

func (r *GormScanRepository) DeleteByPick(ctx context.Context, pickID kernel.UUID) (int, error) {
	result := r.db.WithContext(ctx).Delete(&ScanDTO{}, "pick_id = ?", pickID.Bytes())
	return int(result.RowsAffected), result.Error
}
