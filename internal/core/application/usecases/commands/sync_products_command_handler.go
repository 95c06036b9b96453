package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const defaultProductName = "Product"

// SyncProductsReport summarizes one product import run.
type SyncProductsReport struct {
	Imported int
	Skipped  int
}

// SyncProductsCommandHandler imports the catalog of an external source.
// Products are upserted by SKU, one transaction per catalog row; rows
// committed before a failure stay imported.
type SyncProductsCommandHandler struct {
	uowFactory CatalogUoWFactory
	source     ports.CatalogSource
	logger     *slog.Logger
}

func NewSyncProductsCommandHandler(
	uowFactory CatalogUoWFactory,
	source ports.CatalogSource,
	logger *slog.Logger,
) SyncProductsCommandHandler {
	return SyncProductsCommandHandler{
		uowFactory: uowFactory,
		source:     source,
		logger:     logger.With("component", "sync-products"),
	}
}

// productRow is one catalog row derived from a source product or variant.
type productRow struct {
	sku      string
	name     string
	price    kernel.Money
	stock    *int
	external catalog.ExternalRef
}

func (h *SyncProductsCommandHandler) Handle(ctx context.Context) (SyncProductsReport, error) {
	var report SyncProductsReport
	seen := make(map[string]struct{})

	for sp, err := range h.source.Products(ctx) {
		if err != nil {
			return report, fmt.Errorf("read source products: %w", err)
		}

		for _, row := range productRows(sp) {
			if _, dup := seen[row.sku]; dup {
				report.Skipped++
				continue
			}
			seen[row.sku] = struct{}{}

			if err := h.upsert(ctx, row); err != nil {
				return report, fmt.Errorf("import product %s: %w", row.sku, err)
			}
			report.Imported++
		}
	}

	h.logger.InfoContext(ctx, "products synchronized", "imported", report.Imported, "skipped", report.Skipped)
	return report, nil
}

func (h *SyncProductsCommandHandler) upsert(ctx context.Context, row productRow) error {
	sku, err := kernel.NewSKU(row.sku)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	p, err := repo.GetBySKU(ctx, sku)
	isNew := errors.Is(err, errs.ErrObjectNotFound)
	switch {
	case isNew:
		if p, err = catalog.NewProduct(kernel.NewUUID(), sku, row.name); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = p.Rename(row.name); err != nil {
			return err
		}
	}

	p.SetExternalRef(row.external)
	if err = p.SetPrice(row.price); err != nil {
		return err
	}
	if row.stock != nil {
		if err = p.SetInventoryQuantity(max(*row.stock, 0)); err != nil {
			return err
		}
	}

	if isNew {
		err = repo.Add(ctx, p)
	} else {
		err = repo.Update(ctx, p)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// productRows flattens a source product. Each variant becomes its own row;
// a variant without SKU inherits the product SKU, and failing that gets
// "<productId>:<variantId>". A product without variants falls back to
// "WIX-<productId>".
func productRows(sp ports.SourceProduct) []productRow {
	name := strings.TrimSpace(sp.Name)
	if name == "" {
		name = defaultProductName
	}
	price := moneyOrZero(sp.Price)

	if len(sp.Variants) == 0 {
		sku := strings.TrimSpace(sp.SKU)
		if sku == "" {
			sku = "WIX-" + sp.ExternalID
		}
		return []productRow{{
			sku:      sku,
			name:     name,
			price:    price,
			stock:    sp.Stock,
			external: catalog.ExternalRef{ProductID: sp.ExternalID},
		}}
	}

	rows := make([]productRow, 0, len(sp.Variants))
	for _, v := range sp.Variants {
		sku := strings.TrimSpace(v.SKU)
		if sku == "" {
			sku = strings.TrimSpace(sp.SKU)
		}
		if sku == "" {
			variantID := v.ExternalID
			if variantID == "" {
				variantID = "var"
			}
			sku = sp.ExternalID + ":" + variantID
		}

		row := productRow{
			sku:      sku,
			name:     name + v.NameSuffix,
			price:    price,
			stock:    sp.Stock,
			external: catalog.ExternalRef{ProductID: sp.ExternalID, VariantID: v.ExternalID},
		}
		if v.Price != nil {
			row.price = moneyOrZero(*v.Price)
		}
		if v.Stock != nil {
			row.stock = v.Stock
		}
		rows = append(rows, row)
	}
	return rows
}

// moneyOrZero treats a negative source price as zero.
func moneyOrZero(d decimal.Decimal) kernel.Money {
	m, err := kernel.NewMoney(d)
	if err != nil {
		return kernel.ZeroMoney()
	}
	return m
}
