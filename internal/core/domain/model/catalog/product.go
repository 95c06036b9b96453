package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product literal is used
	// instead of one built by NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructors")

	// ErrProductHasNoPackages is returned when a set size is requested for a
	// product that cannot be scanned at all.
	ErrProductHasNoPackages = errors.New("product has no packages")
)

// ExternalRef links a product row to the external store it was imported
// from. A product with variants is imported once per variant.
type ExternalRef struct {
	ProductID string
	VariantID string
}

// IsZero reports whether the product was never imported.
func (r ExternalRef) IsZero() bool {
	return r.ProductID == "" && r.VariantID == ""
}

// Product is the aggregate root of the catalog.
//
// Product follows these invariants:
//   - SKU is valid and unique in the store
//   - name is not empty
//   - price is a non-negative amount
//   - inventory quantity is not negative
//   - each owned package belongs to this product and has a barcode unique
//     within the product (global uniqueness is enforced by the store)
type Product struct {
	id           kernel.UUID
	sku          kernel.SKU
	name         string
	description  string
	price        kernel.Money
	mainBarcode  string
	external     ExternalRef
	inventoryQty int
	packages     []*Package

	isConstructed bool
}

// NewProduct creates a product without packages, with zero price and
// inventory.
func NewProduct(id kernel.UUID, sku kernel.SKU, name string) (*Product, error) {
	p := &Product{price: kernel.ZeroMoney(), isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setSKU(sku),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// ProductState is the full persisted state used by RestoreProduct.
type ProductState struct {
	ID           kernel.UUID
	SKU          kernel.SKU
	Name         string
	Description  string
	Price        kernel.Money
	MainBarcode  string
	External     ExternalRef
	InventoryQty int
	Packages     []*Package
}

// RestoreProduct rebuilds a product from storage.
func RestoreProduct(s ProductState) (*Product, error) {
	p, err := NewProduct(s.ID, s.SKU, s.Name)
	if err != nil {
		return nil, err
	}

	p.SetDescription(s.Description)
	p.SetMainBarcode(s.MainBarcode)
	p.SetExternalRef(s.External)
	if err := errors.Join(
		p.SetPrice(s.Price),
		p.SetInventoryQuantity(s.InventoryQty),
	); err != nil {
		return nil, err
	}

	for _, pkg := range s.Packages {
		if err := p.AddPackage(pkg); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) SKU() kernel.SKU {
	return p.sku
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) MainBarcode() string {
	return p.mainBarcode
}

func (p *Product) ExternalRef() ExternalRef {
	return p.external
}

func (p *Product) InventoryQuantity() int {
	return p.inventoryQty
}

// Packages returns the product's packages in insertion order. The slice is a
// copy; the packages themselves are shared.
func (p *Product) Packages() []*Package {
	return slices.Clone(p.packages)
}

// ScansPerSet is the number of accepted scans that make up one complete
// set of the product, that is the sum of UnitsPerScan over its packages.
func (p *Product) ScansPerSet() (int, error) {
	if len(p.packages) == 0 {
		return 0, ErrProductHasNoPackages
	}
	total := 0
	for _, pkg := range p.packages {
		total += pkg.UnitsPerScan()
	}
	return total, nil
}

// PackageByBarcode looks up one of the product's own packages.
func (p *Product) PackageByBarcode(barcode kernel.Barcode) (*Package, bool) {
	for _, pkg := range p.packages {
		if pkg.Barcode().IsEqual(barcode) {
			return pkg, true
		}
	}
	return nil, false
}

// ChangeSKU replaces the SKU. Uniqueness is checked by the store.
func (p *Product) ChangeSKU(sku kernel.SKU) error {
	return p.setSKU(sku)
}

// Rename changes the display name.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

func (p *Product) SetDescription(description string) {
	p.description = strings.TrimSpace(description)
}

func (p *Product) SetMainBarcode(barcode string) {
	p.mainBarcode = strings.TrimSpace(barcode)
}

func (p *Product) SetExternalRef(ref ExternalRef) {
	p.external = ExternalRef{
		ProductID: strings.TrimSpace(ref.ProductID),
		VariantID: strings.TrimSpace(ref.VariantID),
	}
}

func (p *Product) SetPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) SetInventoryQuantity(qty int) error {
	if qty < 0 {
		return errs.NewValueIsInvalidErrorWithCause("inventoryQuantity", fmt.Errorf("%d is negative", qty))
	}
	p.inventoryQty = qty
	return nil
}

// AddPackage attaches pkg to the product.
func (p *Product) AddPackage(pkg *Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	if !pkg.ProductID().IsEqual(p.id) {
		return errs.NewValueIsInvalidErrorWithCause(
			"package",
			fmt.Errorf("package %s belongs to product %s", pkg.ID(), pkg.ProductID()),
		)
	}
	if _, ok := p.PackageByBarcode(pkg.Barcode()); ok {
		return errs.NewObjectAlreadyExistsError("barcode", pkg.Barcode().String())
	}
	p.packages = append(p.packages, pkg)
	return nil
}

// RemovePackage detaches the package with the given id.
func (p *Product) RemovePackage(id kernel.UUID) error {
	i := slices.IndexFunc(p.packages, func(pkg *Package) bool { return pkg.ID().IsEqual(id) })
	if i < 0 {
		return errs.NewObjectNotFoundError("package", id.String())
	}
	p.packages = slices.Delete(p.packages, i, i+1)
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSKU(sku kernel.SKU) error {
	if err := sku.Validate(); err != nil {
		return err
	}
	p.sku = sku
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
