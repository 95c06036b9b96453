// Package pickrepo persists pick sessions and the scan log.
package pickrepo

import (
	"time"

	"warehouse/internal/adapters/out/storage/orderrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/pick"

	"github.com/google/uuid"
)

// PickDTO is one pick session of an order.
type PickDTO struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	Status    string              `gorm:"type:varchar(32);not null;default:'active'"`
	CreatedAt time.Time           `gorm:"not null"`
	Order     *orderrepo.OrderDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (PickDTO) TableName() string {
	return "picks"
}

// ScanDTO is one accepted scan. Product and package ids are kept without
// constraints so that catalog edits never rewrite the log.
type ScanDTO struct {
	ID          uuid.UUID               `gorm:"type:uuid;primaryKey"`
	PickID      uuid.UUID               `gorm:"type:uuid;not null;index"`
	OrderItemID uuid.UUID               `gorm:"type:uuid;not null;index:idx_pick_scans_item_barcode"`
	ProductID   uuid.UUID               `gorm:"type:uuid;not null"`
	PackageID   uuid.UUID               `gorm:"type:uuid;not null"`
	Barcode     string                  `gorm:"type:varchar(128);not null;index:idx_pick_scans_item_barcode"`
	ScannedAt   time.Time               `gorm:"not null"`
	Pick        *PickDTO                `gorm:"foreignKey:PickID;constraint:OnDelete:CASCADE"`
	OrderItem   *orderrepo.OrderItemDTO `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE"`
}

func (ScanDTO) TableName() string {
	return "pick_scans"
}

func pickFromDomain(p *pick.Pick) PickDTO {
	return PickDTO{
		ID:        p.ID().Bytes(),
		OrderID:   p.OrderID().Bytes(),
		Status:    p.Status().String(),
		CreatedAt: p.CreatedAt(),
	}
}

func pickToDomain(dto PickDTO) (*pick.Pick, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	status, err := pick.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return pick.RestorePick(id, orderID, status, dto.CreatedAt)
}

func scanFromDomain(s *pick.Scan) ScanDTO {
	return ScanDTO{
		ID:          s.ID().Bytes(),
		PickID:      s.PickID().Bytes(),
		OrderItemID: s.OrderItemID().Bytes(),
		ProductID:   s.ProductID().Bytes(),
		PackageID:   s.PackageID().Bytes(),
		Barcode:     s.Barcode().String(),
		ScannedAt:   s.ScannedAt(),
	}
}

func scanToDomain(dto ScanDTO) (*pick.Scan, error) {
	ids := make([]kernel.UUID, 0, 5)
	for _, raw := range []uuid.UUID{dto.ID, dto.PickID, dto.OrderItemID, dto.ProductID, dto.PackageID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	barcode, err := kernel.NewBarcode(dto.Barcode)
	if err != nil {
		return nil, err
	}

	return pick.NewScan(ids[0], pick.ScanRefs{
		PickID:      ids[1],
		OrderItemID: ids[2],
		ProductID:   ids[3],
		PackageID:   ids[4],
	}, barcode, dto.ScannedAt)
}
