package wix

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"strings"

	"warehouse/internal/core/ports"
)

// errStopped ends a paging loop when the consumer stops iterating.
var errStopped = errors.New("wix: iteration stopped")

var productV3Fields = []string{"CURRENCY", "VARIANTS", "INVENTORY", "PHYSICAL_PROPERTIES"}

type productDTO struct {
	ID        string          `json:"id"`
	LegacyID  string          `json:"_id"`
	ProductID string          `json:"productId"`
	Name      json.RawMessage `json:"name"`
	SKU       json.RawMessage `json:"sku"`
	Price     json.RawMessage `json:"price"`
	PriceData *struct {
		Price json.RawMessage `json:"price"`
	} `json:"priceData"`
	Stock     *quantityDTO `json:"stock"`
	Inventory *quantityDTO `json:"inventory"`
	Variants  []variantDTO `json:"variants"`
}

type skuHolder struct {
	SKU json.RawMessage `json:"sku"`
}

type variantDTO struct {
	ID                 string          `json:"id"`
	VariantID          string          `json:"variantId"`
	SKU                json.RawMessage `json:"sku"`
	ProductSKU         json.RawMessage `json:"productSku"`
	VariantSKU         json.RawMessage `json:"variantSku"`
	Variant            *skuHolder      `json:"variant"`
	PhysicalProperties *skuHolder      `json:"physicalProperties"`
	Properties         *skuHolder      `json:"properties"`
	Choices            json.RawMessage `json:"choices"`
	Options            json.RawMessage `json:"options"`
	Price              json.RawMessage `json:"price"`
	Stock              *quantityDTO    `json:"stock"`
	Inventory          *quantityDTO    `json:"inventory"`
}

type productsPage struct {
	Products   []productDTO `json:"products"`
	Items      []productDTO `json:"items"`
	NextCursor string       `json:"nextCursor"`
	Paging     *struct {
		Total  int `json:"total"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	} `json:"paging"`
	PagingMetadata *struct {
		Cursors struct {
			Next string `json:"next"`
		} `json:"cursors"`
	} `json:"pagingMetadata"`
}

func (p productsPage) items() []productDTO {
	if len(p.Products) > 0 {
		return p.Products
	}
	return p.Items
}

func (p productsPage) next() string {
	if p.NextCursor != "" {
		return p.NextCursor
	}
	if p.PagingMetadata != nil {
		return p.PagingMetadata.Cursors.Next
	}
	return ""
}

// Products pages through the Catalog V3 API. When the first V3 page fails
// the catalog is read from the V1 API instead.
func (c *Client) Products(ctx context.Context) iter.Seq2[ports.SourceProduct, error] {
	return func(yield func(ports.SourceProduct, error) bool) {
		yielded := false
		emit := func(p productDTO) bool {
			yielded = true
			return yield(p.toSource(), nil)
		}

		err := c.productsV3(ctx, emit)
		if err == nil || errors.Is(err, errStopped) {
			return
		}
		if yielded || ctx.Err() != nil || errors.Is(err, ErrNotConfigured) {
			yield(ports.SourceProduct{}, err)
			return
		}

		c.logger.WarnContext(ctx, "catalog v3 query failed, falling back to v1", "error", err)
		if err = c.productsV1(ctx, emit); err != nil && !errors.Is(err, errStopped) {
			yield(ports.SourceProduct{}, err)
		}
	}
}

func (c *Client) productsV3(ctx context.Context, emit func(productDTO) bool) error {
	cursor := ""
	for {
		paging := map[string]any{"limit": c.pageSize}
		if cursor != "" {
			paging["cursor"] = cursor
		}
		body := map[string]any{
			"query":  map[string]any{"cursorPaging": paging},
			"fields": productV3Fields,
		}

		var page productsPage
		if err := c.post(ctx, productsV3Path, body, &page); err != nil {
			return err
		}
		for _, p := range page.items() {
			if !emit(p) {
				return errStopped
			}
		}
		c.logger.DebugContext(ctx, "catalog v3 page", "items", len(page.items()))

		cursor = page.next()
		if cursor == "" {
			return nil
		}
	}
}

func (c *Client) productsV1(ctx context.Context, emit func(productDTO) bool) error {
	cursor := ""
	offset := 0
	for {
		body := map[string]any{"includeVariants": true}
		if cursor != "" {
			body["nextCursor"] = cursor
		} else {
			body["query"] = map[string]any{
				"paging": map[string]any{"limit": c.pageSize, "offset": offset},
			}
		}

		var page productsPage
		if err := c.post(ctx, productsV1Path, body, &page); err != nil {
			return err
		}
		items := page.items()
		for _, p := range items {
			if !emit(p) {
				return errStopped
			}
		}
		c.logger.DebugContext(ctx, "catalog v1 page", "items", len(items), "offset", offset)

		if len(items) == 0 && page.NextCursor == "" {
			return nil
		}
		if page.NextCursor != "" {
			cursor = page.NextCursor
			continue
		}
		if page.Paging == nil {
			return nil
		}

		limit := page.Paging.Limit
		if limit < 1 {
			limit = c.pageSize
		}
		offset = page.Paging.Offset + limit
		if offset >= page.Paging.Total {
			return nil
		}
	}
}

func (p productDTO) toSource() ports.SourceProduct {
	out := ports.SourceProduct{
		ExternalID: firstNonEmpty(p.ID, p.LegacyID, p.ProductID),
		Name:       firstText(p.Name),
		SKU:        firstText(p.SKU),
		Stock:      stockOf(p.Stock, p.Inventory),
	}

	if price, ok := amount(p.Price); ok {
		out.Price = price
	} else if p.PriceData != nil {
		out.Price, _ = amount(p.PriceData.Price)
	}

	for _, v := range p.Variants {
		out.Variants = append(out.Variants, v.toSource())
	}
	return out
}

func (v variantDTO) toSource() ports.SourceVariant {
	out := ports.SourceVariant{
		ExternalID: firstNonEmpty(v.ID, v.VariantID),
		SKU:        v.sku(),
		Stock:      stockOf(v.Stock, v.Inventory),
	}

	labels := choiceLabels(v.Choices)
	if len(labels) == 0 {
		labels = choiceLabels(v.Options)
	}
	if len(labels) > 0 {
		out.NameSuffix = " " + strings.Join(labels, "/")
	}

	if price, ok := amount(v.Price); ok {
		out.Price = &price
	}
	return out
}

func (v variantDTO) sku() string {
	candidates := []json.RawMessage{v.SKU}
	for _, h := range []*skuHolder{v.Variant, v.PhysicalProperties} {
		if h != nil {
			candidates = append(candidates, h.SKU)
		}
	}
	candidates = append(candidates, v.ProductSKU, v.VariantSKU)
	if v.Properties != nil {
		candidates = append(candidates, v.Properties.SKU)
	}
	return firstText(candidates...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
