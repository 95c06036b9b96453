package storage

import (
	"context"

	"warehouse/internal/adapters/out/storage/catalogrepo"
	"warehouse/internal/adapters/out/storage/inventoryrepo"
	"warehouse/internal/adapters/out/storage/orderrepo"
	"warehouse/internal/adapters/out/storage/pickrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&catalogrepo.ProductDTO{},
		&catalogrepo.PackageDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&pickrepo.PickDTO{},
		&pickrepo.ScanDTO{},
		&inventoryrepo.LocationDTO{},
		&inventoryrepo.PlacementDTO{},
		&inventoryrepo.MovementDTO{},
	}
}

// Migrate creates or extends the schema. It never drops columns.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}
