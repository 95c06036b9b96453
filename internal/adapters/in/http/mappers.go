package http

import (
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func toKernelID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func toPackages(views []queries.PackageView) []servers.Package {
	out := make([]servers.Package, 0, len(views))
	for _, p := range views {
		out = append(out, servers.Package{
			Id:            p.ID.Bytes(),
			Barcode:       p.Barcode,
			UnitsPerScan:  p.UnitsPerScan,
			PackageNumber: optional(p.Number),
			Content:       optional(p.Content),
			WeightKg:      decimalString(p.WeightKg),
			VolumeM3:      decimalString(p.VolumeM3),
		})
	}
	return out
}

func toOrderItems(views []queries.ItemView) []servers.OrderItem {
	out := make([]servers.OrderItem, 0, len(views))
	for _, it := range views {
		out = append(out, servers.OrderItem{
			Id:          it.ID.Bytes(),
			ProductId:   it.ProductID.Bytes(),
			Sku:         it.SKU,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			PickedQty:   it.PickedQty,
			Packages:    toPackages(it.Packages),
		})
	}
	return out
}

func toPick(p queries.PickView) servers.Pick {
	return servers.Pick{
		Id:        p.ID.Bytes(),
		OrderId:   p.OrderID.Bytes(),
		Status:    servers.PickStatus(p.Status.String()),
		CreatedAt: p.CreatedAt,
	}
}

func toOrderHeader(o queries.OrderView) servers.OrderHeader {
	return servers.OrderHeader{
		Id:                o.ID.Bytes(),
		OrderNumber:       o.Number,
		CustomerName:      o.CustomerName,
		Status:            servers.OrderHeaderStatus(o.Status.String()),
		FulfillmentStatus: o.FulfillmentStatus.String(),
		CreatedAt:         o.CreatedAt,
	}
}

func toPickRef(ref *queries.PickRef) *servers.PickRef {
	if ref == nil {
		return nil
	}
	return &servers.PickRef{Id: ref.ID.Bytes(), Status: servers.PickStatus(ref.Status.String())}
}

func toOrderSummary(o queries.OrderSummary) servers.OrderSummary {
	h := toOrderHeader(o.OrderView)
	return servers.OrderSummary{
		Id:                h.Id,
		OrderNumber:       h.OrderNumber,
		CustomerName:      h.CustomerName,
		Status:            h.Status,
		FulfillmentStatus: h.FulfillmentStatus,
		CreatedAt:         h.CreatedAt,
		ItemCount:         o.ItemCount,
		Quantity:          o.Quantity,
		PickedQty:         o.PickedQty,
		OpenPick:          toPickRef(o.OpenPick),
	}
}

func toOrderDetail(o queries.GetOrderQueryResponse) servers.OrderDetail {
	s := toOrderSummary(o.OrderSummary)
	return servers.OrderDetail{
		Id:                s.Id,
		OrderNumber:       s.OrderNumber,
		CustomerName:      s.CustomerName,
		Status:            s.Status,
		FulfillmentStatus: s.FulfillmentStatus,
		CreatedAt:         s.CreatedAt,
		ItemCount:         s.ItemCount,
		Quantity:          s.Quantity,
		PickedQty:         s.PickedQty,
		OpenPick:          s.OpenPick,
		Items:             toOrderItems(o.Items),
	}
}

func toPickDetail(resp queries.GetPickQueryResponse) servers.PickDetail {
	scans := make([]servers.Scan, 0, len(resp.Scans))
	for _, s := range resp.Scans {
		scans = append(scans, servers.Scan{
			Id:          s.ID.Bytes(),
			OrderItemId: s.OrderItemID.Bytes(),
			ProductId:   s.ProductID.Bytes(),
			PackageId:   s.PackageID.Bytes(),
			Barcode:     s.Barcode,
			ScannedAt:   s.ScannedAt,
		})
	}
	return servers.PickDetail{
		Pick:  toPick(resp.Pick),
		Order: toOrderHeader(resp.Order),
		Items: toOrderItems(resp.Items),
		Scans: scans,
	}
}

func toProduct(p queries.ProductView) servers.Product {
	return servers.Product{
		Id:                p.ID.Bytes(),
		Sku:               p.SKU,
		Name:              p.Name,
		Description:       optional(p.Description),
		MainBarcode:       optional(p.MainBarcode),
		Price:             p.Price.StringFixed(2),
		WixProductId:      optional(p.ExternalProductID),
		WixVariantId:      optional(p.ExternalVariantID),
		InventoryQuantity: p.InventoryQuantity,
		Packages:          toPackages(p.Packages),
		Locations:         p.Locations,
	}
}

func toLocation(l queries.LocationView) servers.Location {
	return servers.Location{Id: l.ID.Bytes(), Code: l.Code, Name: l.Name, ProductCount: l.ProductCount}
}

func toMovement(m queries.MovementView) servers.StockMovement {
	return servers.StockMovement{
		Id:        m.ID.Bytes(),
		ProductId: m.ProductID.Bytes(),
		Sku:       m.SKU,
		Type:      servers.StockMovementType(m.Type),
		Qty:       m.Quantity,
		Note:      optional(m.Note),
		CreatedAt: m.CreatedAt,
	}
}

func toSyncReport(r commands.SyncReport) servers.SyncReport {
	var out servers.SyncReport
	if r.Products != nil {
		out.Products = servers.SyncProductsReport{Imported: r.Products.Imported, Skipped: r.Products.Skipped}
	}
	if r.Orders != nil {
		out.Orders = servers.SyncOrdersReport{
			Created:      r.Orders.Created,
			Updated:      r.Orders.Updated,
			ItemsSkipped: r.Orders.ItemsSkipped,
		}
	}
	return out
}
