package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrSaveProductCommandIsNotConstructed = errors.New(
		"SaveProductCommand must be created via NewSaveProductCommand constructor",
	)
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// ProductFields are the attributes an operator maintains by hand.
type ProductFields struct {
	SKU         string
	Name        string
	Description string
	MainBarcode string
	// Price is a decimal string such as "129.90"; empty means zero.
	Price string
}

// SaveProductCommand creates or updates a catalog product.
//
// Example:
//
//	cmd, err := NewSaveProductCommand(kernel.NewUUID(), ProductFields{SKU: "SOFA-3", Name: "Sofa", Price: "899.00"})
//	if err != nil {
//	    return err
//	}
//	err = createHandler.Handle(ctx, cmd)
type SaveProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	sku       kernel.SKU
	name      string
	fields    ProductFields
	price     kernel.Money

	guard guard.ConstructorGuard
}

func NewSaveProductCommand(productID kernel.UUID, fields ProductFields) (SaveProductCommand, error) {
	sku, skuErr := kernel.NewSKU(fields.SKU)
	price, priceErr := kernel.MoneyFromString(fields.Price)

	var nameErr error
	if fields.Name == "" {
		nameErr = ErrNameIsRequired
	}

	if err := errors.Join(productID.Validate(), skuErr, priceErr, nameErr); err != nil {
		return SaveProductCommand{}, err
	}

	return SaveProductCommand{
		productID: productID,
		sku:       sku,
		name:      fields.Name,
		fields:    fields,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SaveProductCommand) Validate() error {
	return c.guard.Validate(ErrSaveProductCommandIsNotConstructed)
}

func (c SaveProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c SaveProductCommand) SKU() kernel.SKU {
	return c.sku
}

func (c SaveProductCommand) Name() string {
	return c.name
}

func (c SaveProductCommand) Description() string {
	return c.fields.Description
}

func (c SaveProductCommand) MainBarcode() string {
	return c.fields.MainBarcode
}

func (c SaveProductCommand) Price() kernel.Money {
	return c.price
}

// DeleteProductCommand removes a product and its packages.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(productID kernel.UUID) (DeleteProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return DeleteProductCommand{}, err
	}
	return DeleteProductCommand{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}
