// Package ports defines the contracts between the warehouse core and its
// infrastructure: repositories, the unit of work, the external catalog
// source and the document renderer.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
)

// ProductRepository defines the persistence contract for catalog products.
// Products are loaded with all of their packages.
type ProductRepository interface {
	// Add persists a new product with its packages. Duplicate SKUs or
	// package barcodes fail with errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *catalog.Product) error

	// Update persists the product's attributes and synchronizes its
	// packages: new ones are inserted, removed ones deleted.
	Update(ctx context.Context, aggregate *catalog.Product) error

	// Delete removes the product and, by cascade, its packages.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a product by identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// GetBySKU retrieves a product by SKU.
	GetBySKU(ctx context.Context, sku kernel.SKU) (*catalog.Product, error)

	// FindByExternalRef returns the first product imported for the given
	// external product; when ref.VariantID is set it must match too.
	FindByExternalRef(ctx context.Context, ref catalog.ExternalRef) (*catalog.Product, error)

	// FindPackageByBarcode resolves a package by its globally unique barcode.
	// Returns errs.ErrObjectNotFound when no package carries it.
	FindPackageByBarcode(ctx context.Context, barcode kernel.Barcode) (*catalog.Package, error)

	// GetPackage retrieves a single package by identifier.
	GetPackage(ctx context.Context, id kernel.UUID) (*catalog.Package, error)
}
