package catalogrepo

import (
	"context"

	"warehouse/internal/adapters/out/storage/gormerr"
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product together with its packages.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *catalog.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return gormerr.Translate(err, "product", dto.SKU)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the product's attributes and synchronizes its packages:
// packages no longer on the aggregate are deleted, the others upserted.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *catalog.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&ProductDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"sku":                dto.SKU,
		"name":               dto.Name,
		"description":        dto.Description,
		"main_barcode":       dto.MainBarcode,
		"price":              dto.Price,
		"wix_product_id":     dto.WixProductID,
		"wix_variant_id":     dto.WixVariantID,
		"inventory_quantity": dto.InventoryQuantity,
	})
	if result.Error != nil {
		return gormerr.Translate(result.Error, "product", dto.SKU)
	}
	if result.RowsAffected == 0 {
		return gormerr.Translate(gorm.ErrRecordNotFound, "product", aggregate.ID().String())
	}

	keep := make([]uuid.UUID, 0, len(dto.Packages))
	for _, pkg := range dto.Packages {
		keep = append(keep, pkg.ID)
	}
	stale := db.Where("product_id = ?", dto.ID)
	if len(keep) > 0 {
		stale = stale.Where("id NOT IN ?", keep)
	}
	if err := stale.Delete(&PackageDTO{}).Error; err != nil {
		return err
	}

	for _, pkg := range dto.Packages {
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"barcode", "units_per_scan", "package_number", "content", "weight_kg", "volume_m3",
			}),
		}).Create(&pkg).Error
		if err != nil {
			return gormerr.Translate(err, "barcode", pkg.Barcode)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a product and its packages. A product still referenced by
// an order line fails with errs.ErrObjectIsReferenced.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return gormerr.Translate(result.Error, "product", id.String())
	}
	if result.RowsAffected == 0 {
		return gormerr.Translate(gorm.ErrRecordNotFound, "product", id.String())
	}
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "product", id.String(), "id = ?", id.Bytes())
}

// GetBySKU retrieves a product by its SKU.
func (r *GormProductRepository) GetBySKU(ctx context.Context, sku kernel.SKU) (*catalog.Product, error) {
	if err := sku.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "product", sku.String(), "sku = ?", sku.String())
}

// FindByExternalRef matches on the Wix product id and, when set, the variant
// id. Among several matches the lowest SKU wins.
func (r *GormProductRepository) FindByExternalRef(ctx context.Context, ref catalog.ExternalRef) (*catalog.Product, error) {
	if ref.ProductID == "" {
		return nil, gormerr.Translate(gorm.ErrRecordNotFound, "product", "external ref")
	}
	if ref.VariantID != "" {
		return r.first(ctx, "product", ref.ProductID+"/"+ref.VariantID,
			"wix_product_id = ? AND wix_variant_id = ?", ref.ProductID, ref.VariantID)
	}
	return r.first(ctx, "product", ref.ProductID, "wix_product_id = ?", ref.ProductID)
}

// FindPackageByBarcode resolves a package by its barcode.
func (r *GormProductRepository) FindPackageByBarcode(ctx context.Context, barcode kernel.Barcode) (*catalog.Package, error) {
	if err := barcode.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "barcode = ?", barcode.String()).Error; err != nil {
		return nil, gormerr.Translate(err, "package", barcode.String())
	}
	return packageToDomain(dto)
}

// GetPackage retrieves a package by ID.
func (r *GormProductRepository) GetPackage(ctx context.Context, id kernel.UUID) (*catalog.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, gormerr.Translate(err, "package", id.String())
	}
	return packageToDomain(dto)
}

func (r *GormProductRepository) first(ctx context.Context, param string, key any, query string, args ...any) (*catalog.Product, error) {
	var dto ProductDTO
	err := r.db.WithContext(ctx).
		Preload("Packages", func(db *gorm.DB) *gorm.DB { return db.Order("package_number, barcode") }).
		Where(query, args...).
		Order("sku").
		First(&dto).Error
	if err != nil {
		return nil, gormerr.Translate(err, param, key)
	}
	return toDomain(dto)
}
