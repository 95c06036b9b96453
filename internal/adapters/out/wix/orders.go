package wix

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"iter"
	"strings"

	"warehouse/internal/core/ports"
)

const (
	// MaxOrderPages bounds one orders sync.
	MaxOrderPages   = 200
	unknownCustomer = "Unknown Customer"
)

type contactDTO struct {
	FirstName json.RawMessage `json:"firstName"`
	LastName  json.RawMessage `json:"lastName"`
	Company   json.RawMessage `json:"company"`
}

func (c *contactDTO) fullName() string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join([]string{firstText(c.FirstName), firstText(c.LastName)}, " "))
}

func (c *contactDTO) company() string {
	if c == nil {
		return ""
	}
	return firstText(c.Company)
}

type contactHolder struct {
	ContactDetails *contactDTO `json:"contactDetails"`
}

func (h *contactHolder) contact() *contactDTO {
	if h == nil {
		return nil
	}
	return h.ContactDetails
}

type orderDTO struct {
	ID                string          `json:"id"`
	Number            json.RawMessage `json:"number"`
	Status            string          `json:"status"`
	FulfillmentStatus string          `json:"fulfillmentStatus"`
	BillingInfo       *contactHolder  `json:"billingInfo"`
	ShippingInfo      *struct {
		Logistics *struct {
			ShippingDestination *contactHolder `json:"shippingDestination"`
		} `json:"logistics"`
	} `json:"shippingInfo"`
	RecipientInfo *contactHolder `json:"recipientInfo"`
	BuyerInfo     *struct {
		ContactDetails *contactDTO `json:"contactDetails"`
		ContactID      string      `json:"contactId"`
	} `json:"buyerInfo"`
	LineItems        []lineItemDTO `json:"lineItems"`
	CatalogLineItems []lineItemDTO `json:"catalogLineItems"`
}

type lineItemDTO struct {
	SKU                json.RawMessage `json:"sku"`
	PhysicalProperties *skuHolder      `json:"physicalProperties"`
	CatalogReference   *struct {
		CatalogItemID string          `json:"catalogItemId"`
		Options       json.RawMessage `json:"options"`
	} `json:"catalogReference"`
	ProductID   string          `json:"productId"`
	VariantID   string          `json:"variantId"`
	ProductName json.RawMessage `json:"productName"`
	Name        json.RawMessage `json:"name"`
	Quantity    json.RawMessage `json:"quantity"`
}

type ordersPage struct {
	Orders   []orderDTO `json:"orders"`
	Items    []orderDTO `json:"items"`
	Metadata *struct {
		Cursors *struct {
			Next string `json:"next"`
		} `json:"cursors"`
	} `json:"metadata"`
	NextCursor string `json:"nextCursor"`
}

func (p ordersPage) items() []orderDTO {
	if len(p.Orders) > 0 {
		return p.Orders
	}
	return p.Items
}

func (p ordersPage) next() string {
	if p.Metadata != nil && p.Metadata.Cursors != nil && p.Metadata.Cursors.Next != "" {
		return p.Metadata.Cursors.Next
	}
	return p.NextCursor
}

// Orders searches every non-initialized order, newest first. Paging stops on
// a repeated cursor or after MaxOrderPages pages.
func (c *Client) Orders(ctx context.Context) iter.Seq2[ports.SourceOrder, error] {
	return func(yield func(ports.SourceOrder, error) bool) {
		err := c.searchOrders(ctx, func(o orderDTO) bool {
			return yield(o.toSource(), nil)
		})
		if err != nil && !errors.Is(err, errStopped) {
			yield(ports.SourceOrder{}, err)
		}
	}
}

func (c *Client) searchOrders(ctx context.Context, emit func(orderDTO) bool) error {
	cursor := ""
	seen := make(map[string]struct{})

	for pages := 1; ; pages++ {
		paging := map[string]any{"limit": c.pageSize}
		if cursor != "" {
			paging["cursor"] = cursor
		}
		body := map[string]any{
			"cursorPaging": paging,
			"filter":       map[string]any{"status": map[string]any{"$ne": "INITIALIZED"}},
			"sort":         []map[string]any{{"fieldName": "createdDate", "order": "DESC"}},
		}

		var page ordersPage
		if err := c.post(ctx, ordersSearchPath, body, &page); err != nil {
			return err
		}
		for _, o := range page.items() {
			if !emit(o) {
				return errStopped
			}
		}
		c.logger.DebugContext(ctx, "orders page", "page", pages, "items", len(page.items()))

		next := page.next()
		if next == "" {
			return nil
		}
		if _, ok := seen[next]; ok || next == cursor {
			c.logger.WarnContext(ctx, "orders cursor repeated, stopping", "page", pages)
			return nil
		}
		if pages >= MaxOrderPages {
			c.logger.WarnContext(ctx, "orders page limit reached, stopping", "pages", pages)
			return nil
		}
		seen[next] = struct{}{}
		cursor = next
	}
}

func (o orderDTO) toSource() ports.SourceOrder {
	number := firstText(o.Number)
	if number == "" {
		number = o.ID
	}

	status := strings.ToLower(strings.TrimSpace(o.Status))
	if status == "" {
		status = "open"
	}

	lines := o.LineItems
	if len(lines) == 0 {
		lines = o.CatalogLineItems
	}

	out := ports.SourceOrder{
		Number:            number,
		CustomerName:      o.customerName(),
		Status:            status,
		FulfillmentStatus: o.FulfillmentStatus,
		Lines:             make([]ports.SourceOrderLine, 0, len(lines)),
	}
	for _, li := range lines {
		out.Lines = append(out.Lines, li.toSource())
	}
	return out
}

// customerName resolves the buyer's display name: billing, shipping and
// recipient contacts, then a company name, then the buyer contact.
func (o orderDTO) customerName() string {
	var shipping *contactDTO
	if o.ShippingInfo != nil && o.ShippingInfo.Logistics != nil {
		shipping = o.ShippingInfo.Logistics.ShippingDestination.contact()
	}
	billing := o.BillingInfo.contact()
	recipient := o.RecipientInfo.contact()

	for _, c := range []*contactDTO{billing, shipping, recipient} {
		if name := c.fullName(); name != "" {
			return name
		}
	}
	for _, c := range []*contactDTO{billing, shipping, recipient} {
		if company := c.company(); company != "" {
			return company
		}
	}
	if o.BuyerInfo != nil {
		if name := o.BuyerInfo.ContactDetails.fullName(); name != "" {
			return name
		}
		if o.BuyerInfo.ContactID != "" {
			return o.BuyerInfo.ContactID
		}
	}
	return unknownCustomer
}

func (li lineItemDTO) toSource() ports.SourceOrderLine {
	var physical json.RawMessage
	if li.PhysicalProperties != nil {
		physical = li.PhysicalProperties.SKU
	}

	out := ports.SourceOrderLine{
		SKU:               firstText(physical, li.SKU),
		ExternalProductID: li.ProductID,
		ExternalVariantID: li.VariantID,
		Name:              firstText(li.ProductName, li.Name),
		Quantity:          1,
	}
	if li.CatalogReference != nil {
		out.ExternalProductID = firstNonEmpty(li.CatalogReference.CatalogItemID, li.ProductID)
		if v := variantFromOptions(li.CatalogReference.Options); v != "" {
			out.ExternalVariantID = v
		}
	}
	if n, ok := integer(li.Quantity); ok && n > 0 {
		out.Quantity = n
	}
	return out
}

// variantFromOptions reads catalogReference.options, which is a variant id
// string or an object with variantId or variant.id.
func variantFromOptions(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	if raw[0] == '"' {
		return text(raw)
	}
	var obj struct {
		VariantID string `json:"variantId"`
		Variant   *struct {
			ID string `json:"id"`
		} `json:"variant"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}
	if obj.VariantID != "" {
		return obj.VariantID
	}
	if obj.Variant != nil {
		return obj.Variant.ID
	}
	return ""
}
