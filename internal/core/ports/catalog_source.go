package ports

import (
	"context"
	"iter"

	"github.com/shopspring/decimal"
)

// CatalogSource is an external e-commerce platform the catalog and the
// orders are imported from. Both sequences are lazy and can be iterated
// again from the start; an error ends the sequence.
type CatalogSource interface {
	Products(ctx context.Context) iter.Seq2[SourceProduct, error]
	Orders(ctx context.Context) iter.Seq2[SourceOrder, error]
}

// SourceProduct is a product as published by the source. A product with
// variants is imported as one catalog row per variant.
type SourceProduct struct {
	ExternalID string
	Name       string
	SKU        string
	Price      decimal.Decimal
	Stock      *int
	Variants   []SourceVariant
}

// SourceVariant is one purchasable variant. Zero values fall back to the
// parent product.
type SourceVariant struct {
	ExternalID string
	SKU        string
	// NameSuffix is appended to the product name, e.g. " Oak/160cm".
	NameSuffix string
	Price      *decimal.Decimal
	Stock      *int
}

// SourceOrder is an order as published by the source.
type SourceOrder struct {
	Number       string
	CustomerName string
	// Status is the source's lifecycle status, lower-cased.
	Status            string
	FulfillmentStatus string
	Lines             []SourceOrderLine
}

// SourceOrderLine references the ordered product by SKU and by the
// source's own product and variant identifiers; any of them may be empty.
type SourceOrderLine struct {
	SKU               string
	ExternalProductID string
	ExternalVariantID string
	Name              string
	Quantity          int
}
