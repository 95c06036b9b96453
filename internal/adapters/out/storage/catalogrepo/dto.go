// Package catalogrepo provides data transfer objects and mapping functions for catalog persistence.
// This package implements the repository pattern for the product aggregate, handling
// the conversion between domain entities and database representations.
package catalogrepo

import (
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product aggregates.
// SKU is unique; packages are owned and removed with the product.
type ProductDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SKU               string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name              string          `gorm:"type:varchar(255);not null"`
	Description       string          `gorm:"type:text;not null;default:''"`
	MainBarcode       string          `gorm:"type:varchar(128);not null;default:''"`
	Price             decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	WixProductID      string          `gorm:"type:varchar(64);not null;default:'';index:idx_products_wix"`
	WixVariantID      string          `gorm:"type:varchar(64);not null;default:'';index:idx_products_wix"`
	InventoryQuantity int             `gorm:"type:int;not null;default:0"`
	Packages          []PackageDTO    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// PackageDTO represents one scannable package of a product. Barcodes are
// unique across the whole catalog.
type PackageDTO struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	Barcode       string              `gorm:"type:varchar(128);not null;uniqueIndex"`
	UnitsPerScan  int                 `gorm:"type:int;not null;default:1"`
	PackageNumber string              `gorm:"type:varchar(64);not null;default:''"`
	Content       string              `gorm:"type:varchar(255);not null;default:''"`
	WeightKg      decimal.NullDecimal `gorm:"type:decimal(10,3)"`
	VolumeM3      decimal.NullDecimal `gorm:"type:decimal(10,4)"`
}

// TableName specifies the database table name for package entities.
func (PackageDTO) TableName() string {
	return "product_packages"
}

func fromDomain(p *catalog.Product) ProductDTO {
	productID := p.ID().Bytes()

	packages := make([]PackageDTO, 0, len(p.Packages()))
	for _, pkg := range p.Packages() {
		packages = append(packages, packageFromDomain(pkg))
	}

	return ProductDTO{
		ID:                productID,
		SKU:               p.SKU().String(),
		Name:              p.Name(),
		Description:       p.Description(),
		MainBarcode:       p.MainBarcode(),
		Price:             p.Price().Decimal(),
		WixProductID:      p.ExternalRef().ProductID,
		WixVariantID:      p.ExternalRef().VariantID,
		InventoryQuantity: p.InventoryQuantity(),
		Packages:          packages,
	}
}

func packageFromDomain(pkg *catalog.Package) PackageDTO {
	d := pkg.Details()
	return PackageDTO{
		ID:            pkg.ID().Bytes(),
		ProductID:     pkg.ProductID().Bytes(),
		Barcode:       pkg.Barcode().String(),
		UnitsPerScan:  pkg.UnitsPerScan(),
		PackageNumber: d.Number,
		Content:       d.Content,
		WeightKg:      nullDecimal(d.WeightKg),
		VolumeM3:      nullDecimal(d.VolumeM3),
	}
}

// toDomain reconstructs the complete aggregate including its packages using RestoreProduct.
func toDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sku, err := kernel.NewSKU(dto.SKU)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	packages := make([]*catalog.Package, 0, len(dto.Packages))
	for _, pkgDTO := range dto.Packages {
		pkg, pkgErr := packageToDomain(pkgDTO)
		if pkgErr != nil {
			return nil, pkgErr
		}
		packages = append(packages, pkg)
	}

	return catalog.RestoreProduct(catalog.ProductState{
		ID:           id,
		SKU:          sku,
		Name:         dto.Name,
		Description:  dto.Description,
		Price:        price,
		MainBarcode:  dto.MainBarcode,
		External:     catalog.ExternalRef{ProductID: dto.WixProductID, VariantID: dto.WixVariantID},
		InventoryQty: dto.InventoryQuantity,
		Packages:     packages,
	})
}

func packageToDomain(dto PackageDTO) (*catalog.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	barcode, err := kernel.NewBarcode(dto.Barcode)
	if err != nil {
		return nil, err
	}

	return catalog.RestorePackage(id, productID, barcode, dto.UnitsPerScan, catalog.PackageDetails{
		Number:   dto.PackageNumber,
		Content:  dto.Content,
		WeightKg: decimalPtr(dto.WeightKg),
		VolumeM3: decimalPtr(dto.VolumeM3),
	})
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
