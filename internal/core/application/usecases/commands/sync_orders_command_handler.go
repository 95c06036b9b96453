package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

const placeholderProductName = "Wix Product"

// SyncOrdersReport summarizes one order import run.
type SyncOrdersReport struct {
	Created int
	Updated int
	// ItemsSkipped counts quantity changes refused because the new quantity
	// is below what is already picked.
	ItemsSkipped int
}

// SyncOrdersCommandHandler imports orders of an external source, upserting
// each by order number in its own transaction.
//
// An order already in the store keeps its picking state: only the customer
// name, new lines and line quantities are taken from the source, merged
// under the order's lock. New orders take their status from the source.
type SyncOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     OrderLocker
	source     ports.CatalogSource
	logger     *slog.Logger
	now        func() time.Time
}

func NewSyncOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	locker OrderLocker,
	source ports.CatalogSource,
	logger *slog.Logger,
) SyncOrdersCommandHandler {
	return SyncOrdersCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		source:     source,
		logger:     logger.With("component", "sync-orders"),
		now:        time.Now,
	}
}

func (h *SyncOrdersCommandHandler) Handle(ctx context.Context) (SyncOrdersReport, error) {
	var report SyncOrdersReport

	for so, err := range h.source.Orders(ctx) {
		if err != nil {
			return report, fmt.Errorf("read source orders: %w", err)
		}
		if strings.TrimSpace(so.Number) == "" {
			continue
		}

		if err := h.upsert(ctx, so, &report); err != nil {
			return report, fmt.Errorf("import order %s: %w", so.Number, err)
		}
	}

	h.logger.InfoContext(ctx, "orders synchronized",
		"created", report.Created,
		"updated", report.Updated,
		"items_skipped", report.ItemsSkipped,
	)
	return report, nil
}

func (h *SyncOrdersCommandHandler) upsert(ctx context.Context, so ports.SourceOrder, report *SyncOrdersReport) error {
	uow := h.uowFactory.Create()

	existing, err := uow.OrderRepository().GetByNumber(ctx, strings.TrimSpace(so.Number))
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if err = h.inTx(ctx, uow, func() error { return h.create(ctx, uow, so) }); err != nil {
			return err
		}
		report.Created++
		return nil
	case err != nil:
		return err
	}

	unlock, err := h.locker.Lock(ctx, existing.ID())
	if err != nil {
		return err
	}
	defer unlock()

	skipped := 0
	err = h.inTx(ctx, uow, func() error {
		o, err := uow.OrderRepository().GetForUpdate(ctx, existing.ID())
		if err != nil {
			return err
		}
		skipped, err = h.merge(ctx, uow, o, so)
		return err
	})
	if err != nil {
		return err
	}

	report.Updated++
	report.ItemsSkipped += skipped
	return nil
}

func (h *SyncOrdersCommandHandler) inTx(ctx context.Context, uow OrderUoW, fn func() error) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (h *SyncOrdersCommandHandler) create(ctx context.Context, uow OrderUoW, so ports.SourceOrder) error {
	id := kernel.NewUUID()

	var items []*order.Item
	for _, line := range so.Lines {
		p, err := h.resolveProduct(ctx, uow.ProductRepository(), line)
		if err != nil {
			return err
		}
		if containsProduct(items, p.ID()) {
			continue
		}

		item, err := order.NewItem(kernel.NewUUID(), id, p.ID(), lineSKU(line, p), lineName(line, p), lineQuantity(line))
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	status, fulfillment := sourceStatuses(so)
	o, err := order.RestoreOrder(id, so.Number, so.CustomerName, status, fulfillment, items)
	if err != nil {
		return err
	}

	return uow.OrderRepository().Add(ctx, o)
}

func (h *SyncOrdersCommandHandler) merge(
	ctx context.Context,
	uow OrderUoW,
	o *order.Order,
	so ports.SourceOrder,
) (int, error) {
	if strings.TrimSpace(so.CustomerName) != "" {
		o.SetCustomerName(so.CustomerName)
	}

	skipped := 0
	for _, line := range so.Lines {
		p, err := h.resolveProduct(ctx, uow.ProductRepository(), line)
		if err != nil {
			return 0, err
		}

		qty := lineQuantity(line)
		item, ok := o.ItemForProduct(p.ID())
		if !ok {
			item, err = order.NewItem(kernel.NewUUID(), o.ID(), p.ID(), lineSKU(line, p), lineName(line, p), qty)
			if err != nil {
				return 0, err
			}
			if err = o.AddItem(item); err != nil {
				return 0, err
			}
			continue
		}

		if qty == item.Quantity() {
			continue
		}
		if qty < item.PickedQty() {
			h.logger.WarnContext(ctx, "quantity below picked, keeping stored quantity",
				"order_number", o.Number(),
				"sku", item.SKU().String(),
				"picked", item.PickedQty(),
				"source_quantity", qty,
			)
			skipped++
			continue
		}
		if err = o.ChangeItemQuantity(item.ID(), qty); err != nil {
			return 0, err
		}
	}

	return skipped, uow.OrderRepository().UpdateDetails(ctx, o)
}

// resolveProduct matches a line by SKU, then by external product and
// variant id, then by external product id alone. Unmatched lines get a
// placeholder product with zero price.
func (h *SyncOrdersCommandHandler) resolveProduct(
	ctx context.Context,
	products ports.ProductRepository,
	line ports.SourceOrderLine,
) (*catalog.Product, error) {
	lookups := make([]func() (*catalog.Product, error), 0, 3)
	if sku, err := kernel.NewSKU(line.SKU); err == nil {
		lookups = append(lookups, func() (*catalog.Product, error) { return products.GetBySKU(ctx, sku) })
	}
	if line.ExternalProductID != "" && line.ExternalVariantID != "" {
		ref := catalog.ExternalRef{ProductID: line.ExternalProductID, VariantID: line.ExternalVariantID}
		lookups = append(lookups, func() (*catalog.Product, error) { return products.FindByExternalRef(ctx, ref) })
	}
	if line.ExternalProductID != "" {
		ref := catalog.ExternalRef{ProductID: line.ExternalProductID}
		lookups = append(lookups, func() (*catalog.Product, error) { return products.FindByExternalRef(ctx, ref) })
	}

	for _, lookup := range lookups {
		p, err := lookup()
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
	}

	return h.placeholder(ctx, products, line)
}

func (h *SyncOrdersCommandHandler) placeholder(
	ctx context.Context,
	products ports.ProductRepository,
	line ports.SourceOrderLine,
) (*catalog.Product, error) {
	raw := strings.TrimSpace(line.SKU)
	switch {
	case raw != "":
	case line.ExternalProductID != "" && line.ExternalVariantID != "":
		raw = "WIX-" + line.ExternalProductID + "-" + line.ExternalVariantID
	case line.ExternalProductID != "":
		raw = "WIX-" + line.ExternalProductID
	default:
		raw = "WIX-NO-ID-" + strconv.FormatInt(h.now().UnixMilli(), 10)
	}

	sku, err := kernel.NewSKU(raw)
	if err != nil {
		return nil, err
	}
	p, err := products.GetBySKU(ctx, sku)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	name := strings.TrimSpace(line.Name)
	if name == "" {
		name = placeholderProductName
	}
	if p, err = catalog.NewProduct(kernel.NewUUID(), sku, name); err != nil {
		return nil, err
	}
	p.SetExternalRef(catalog.ExternalRef{ProductID: line.ExternalProductID, VariantID: line.ExternalVariantID})
	if err = products.Add(ctx, p); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "placeholder product created", "sku", sku.String())
	return p, nil
}

// sourceStatuses maps the source lifecycle onto the order statuses. Anything
// but a fulfilled order is open.
func sourceStatuses(so ports.SourceOrder) (order.Status, order.FulfillmentStatus) {
	fulfillment, err := order.ParseFulfillmentStatus(strings.ToUpper(strings.TrimSpace(so.FulfillmentStatus)))
	if err != nil {
		fulfillment = order.FulfillmentNone
	}

	status := order.StatusOpen
	if strings.EqualFold(so.Status, order.StatusFulfilled.String()) || fulfillment == order.FulfillmentFulfilled {
		status = order.StatusFulfilled
	}
	return status, fulfillment
}

func lineQuantity(line ports.SourceOrderLine) int {
	if line.Quantity < 1 {
		return 1
	}
	return line.Quantity
}

func lineSKU(line ports.SourceOrderLine, p *catalog.Product) kernel.SKU {
	if sku, err := kernel.NewSKU(line.SKU); err == nil {
		return sku
	}
	return p.SKU()
}

func lineName(line ports.SourceOrderLine, p *catalog.Product) string {
	if name := strings.TrimSpace(line.Name); name != "" {
		return name
	}
	return p.Name()
}

func containsProduct(items []*order.Item, productID kernel.UUID) bool {
	for _, item := range items {
		if item.ProductID().IsEqual(productID) {
			return true
		}
	}
	return false
}
