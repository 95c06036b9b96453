package commands

import (
	"context"
	"sync"
)

// SyncReport holds the summaries of the parts that ran.
type SyncReport struct {
	Products *SyncProductsReport
	Orders   *SyncOrdersReport
}

// SyncCommandHandler runs imports one at a time. A scheduled run and a
// manual trigger arriving together are executed back to back.
type SyncCommandHandler struct {
	products SyncProductsCommandHandler
	orders   SyncOrdersCommandHandler
	mu       *sync.Mutex
}

func NewSyncCommandHandler(products SyncProductsCommandHandler, orders SyncOrdersCommandHandler) SyncCommandHandler {
	return SyncCommandHandler{products: products, orders: orders, mu: &sync.Mutex{}}
}

// Handle stops at the first failing part; the report carries what
// completed before it.
func (h *SyncCommandHandler) Handle(ctx context.Context, cmd SyncCommand) (SyncReport, error) {
	if err := cmd.Validate(); err != nil {
		return SyncReport{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var report SyncReport
	if cmd.includesProducts() {
		r, err := h.products.Handle(ctx)
		if err != nil {
			return report, err
		}
		report.Products = &r
	}
	if cmd.includesOrders() {
		r, err := h.orders.Handle(ctx)
		if err != nil {
			return report, err
		}
		report.Orders = &r
	}
	return report, nil
}
