// Package inventoryrepo persists storage locations, product placements and
// the stock movement journal.
package inventoryrepo

import (
	"time"

	"warehouse/internal/adapters/out/storage/catalogrepo"
	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type LocationDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name string    `gorm:"type:varchar(255);not null;default:''"`
}

func (LocationDTO) TableName() string {
	return "locations"
}

// PlacementDTO is the on-hand count of a product at a location.
type PlacementDTO struct {
	ProductID  uuid.UUID               `gorm:"type:uuid;primaryKey"`
	LocationID uuid.UUID               `gorm:"type:uuid;primaryKey"`
	OnHand     int                     `gorm:"type:int;not null;default:0"`
	Product    *catalogrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Location   *LocationDTO            `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}

func (PlacementDTO) TableName() string {
	return "product_locations"
}

type MovementDTO struct {
	ID        uuid.UUID               `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Type      string                  `gorm:"type:varchar(8);not null"`
	Quantity  int                     `gorm:"type:int;not null"`
	Note      string                  `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time               `gorm:"not null;index"`
	Product   *catalogrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (MovementDTO) TableName() string {
	return "stock_movements"
}

func locationToDomain(dto LocationDTO) (*inventory.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return inventory.NewLocation(id, dto.Code, dto.Name)
}
