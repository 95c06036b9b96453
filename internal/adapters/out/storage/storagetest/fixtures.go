package storagetest

import (
	"context"
	"strconv"
	"testing"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// PackageSpec describes one package of a fixture product.
type PackageSpec struct {
	Barcode      string
	UnitsPerScan int
}

// Product builds a product with one single-unit package per barcode.
func Product(t testing.TB, sku string, barcodes ...string) *catalog.Product {
	t.Helper()

	specs := make([]PackageSpec, 0, len(barcodes))
	for _, b := range barcodes {
		specs = append(specs, PackageSpec{Barcode: b, UnitsPerScan: 1})
	}
	return ProductWithPackages(t, sku, specs...)
}

// ProductWithPackages builds a product named after its SKU.
func ProductWithPackages(t testing.TB, sku string, packages ...PackageSpec) *catalog.Product {
	t.Helper()

	s, err := kernel.NewSKU(sku)
	require.NoError(t, err)
	p, err := catalog.NewProduct(kernel.NewUUID(), s, "Product "+sku)
	require.NoError(t, err)

	for i, def := range packages {
		barcode, err := kernel.NewBarcode(def.Barcode)
		require.NoError(t, err)

		pkg, err := catalog.NewPackage(kernel.NewUUID(), p.ID(), barcode, def.UnitsPerScan, catalog.PackageDetails{
			Number: strconv.Itoa(i + 1),
		})
		require.NoError(t, err)
		require.NoError(t, p.AddPackage(pkg))
	}
	return p
}

// Line is one requested product of a fixture order.
type Line struct {
	Product  *catalog.Product
	Quantity int
}

// Order builds an open order.
func Order(t testing.TB, number string, lines ...Line) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), number, "Customer "+number)
	require.NoError(t, err)

	for _, line := range lines {
		item, err := order.NewItem(
			kernel.NewUUID(), o.ID(), line.Product.ID(), line.Product.SKU(), line.Product.Name(), line.Quantity,
		)
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item))
	}
	return o
}

// Seed stores products and orders in one transaction.
func Seed(t testing.TB, db *gorm.DB, products []*catalog.Product, orders ...*order.Order) {
	t.Helper()

	ctx := context.Background()
	uow := newUnitOfWork(db)
	require.NoError(t, uow.Begin(ctx))
	for _, p := range products {
		require.NoError(t, uow.ProductRepository().Add(ctx, p))
	}
	for _, o := range orders {
		require.NoError(t, uow.OrderRepository().Add(ctx, o))
	}
	require.NoError(t, uow.Commit(ctx))
}
