package inventoryrepo

import (
	"context"

	"warehouse/internal/adapters/out/storage/gormerr"
	"warehouse/internal/core/domain/model/inventory"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

func (r *GormLocationRepository) Add(ctx context.Context, location *inventory.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	dto := LocationDTO{
		ID:   location.ID().Bytes(),
		Code: location.Code(),
		Name: location.Name(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return gormerr.Translate(err, "location", dto.Code)
	}
	return nil
}

func (r *GormLocationRepository) GetByCode(ctx context.Context, code string) (*inventory.Location, error) {
	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		return nil, gormerr.Translate(err, "location", code)
	}
	return locationToDomain(dto)
}

// SavePlacement upserts on the (product, location) key.
func (r *GormLocationRepository) SavePlacement(ctx context.Context, placement inventory.Placement) error {
	dto := PlacementDTO{
		ProductID:  placement.ProductID().Bytes(),
		LocationID: placement.LocationID().Bytes(),
		OnHand:     placement.OnHand(),
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "location_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"on_hand"}),
	}).Create(&dto).Error
	return gormerr.Translate(err, "placement", placement.ProductID().String())
}

// GormMovementRepository implements MovementRepository using GORM.
type GormMovementRepository struct {
	db *gorm.DB
}

func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

func (r *GormMovementRepository) Add(ctx context.Context, movement *inventory.Movement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	dto := MovementDTO{
		ID:        movement.ID().Bytes(),
		ProductID: movement.ProductID().Bytes(),
		Type:      string(movement.Type()),
		Quantity:  movement.Quantity(),
		Note:      movement.Note(),
		CreatedAt: movement.CreatedAt(),
	}
	return gormerr.Translate(r.db.WithContext(ctx).Create(&dto).Error, "movement", movement.ID().String())
}
