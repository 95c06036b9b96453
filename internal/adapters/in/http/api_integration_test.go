package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"warehouse/cmd"
	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/storage/storagetest"
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
	"warehouse/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSource struct {
	products []ports.SourceProduct
	orders   []ports.SourceOrder
}

func (s fakeSource) Products(_ context.Context) iter.Seq2[ports.SourceProduct, error] {
	return func(yield func(ports.SourceProduct, error) bool) {
		for _, p := range s.products {
			if !yield(p, nil) {
				return
			}
		}
	}
}

func (s fakeSource) Orders(_ context.Context) iter.Seq2[ports.SourceOrder, error] {
	return func(yield func(ports.SourceOrder, error) bool) {
		for _, o := range s.orders {
			if !yield(o, nil) {
				return
			}
		}
	}
}

type api struct {
	t  *testing.T
	db *gorm.DB
	e  *echo.Echo
}

func newAPI(t *testing.T, source ports.CatalogSource) *api {
	t.Helper()

	db := storagetest.SQLite(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	root := cmd.NewCompositionRoot(cmd.Config{}, db, logger, source)

	e, err := httpin.NewRouter(root.CreateHTTPServer(), logger)
	require.NoError(t, err)

	return &api{t: t, db: db, e: e}
}

func (a *api) seed(products []*catalog.Product, orders ...*order.Order) {
	storagetest.Seed(a.t, a.db, products, orders...)
}

func (a *api) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, kind servers.ErrorKind) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decode[servers.Error](t, rec)
	assert.Equal(t, status, body.Code)
	assert.Equal(t, kind, body.Kind)
	assert.NotEmpty(t, body.Message)
}

func TestAPI_ScanFlow(t *testing.T) {
	a := newAPI(t, fakeSource{})
	desk := storagetest.Product(t, "DESK", "B1", "B2")
	o := storagetest.Order(t, "1001", storagetest.Line{Product: desk, Quantity: 1})
	a.seed([]*catalog.Product{desk}, o)

	rec := a.do(http.MethodPost, "/api/v1/picks", servers.PickInput{OrderId: o.ID().Bytes()})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[servers.Pick](t, rec)
	assert.Equal(t, servers.PickStatusActive, created.Status)
	pickPath := "/api/v1/picks/" + created.Id.String()

	rec = a.do(http.MethodPost, pickPath+"/scan", servers.ScanInput{Barcode: "B1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := decode[servers.ScanResult](t, rec)
	assert.True(t, first.Success)
	assert.Equal(t, 0, first.Item.PickedQty)
	assert.Equal(t, 1, first.Item.Quantity)
	assert.False(t, first.OrderCompleted)

	rec = a.do(http.MethodPost, pickPath+"/scan", servers.ScanInput{Barcode: " B2 "})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	second := decode[servers.ScanResult](t, rec)
	assert.Equal(t, 1, second.Item.PickedQty)
	assert.True(t, second.OrderCompleted)

	rec = a.do(http.MethodPost, pickPath+"/scan", servers.ScanInput{Barcode: "B2"})
	assertError(t, rec, http.StatusBadRequest, servers.OverScanned)

	rec = a.do(http.MethodGet, pickPath, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	detail := decode[servers.PickDetail](t, rec)
	assert.Equal(t, servers.PickStatusCompleted, detail.Pick.Status)
	assert.Equal(t, servers.OrderHeaderStatusFulfilled, detail.Order.Status)
	assert.Len(t, detail.Scans, 2)
	require.Len(t, detail.Items, 1)
	assert.Len(t, detail.Items[0].Packages, 2)
}

func TestAPI_PartialAndReset(t *testing.T) {
	a := newAPI(t, fakeSource{})
	chair := storagetest.Product(t, "CHAIR", "C1")
	o := storagetest.Order(t, "1002", storagetest.Line{Product: chair, Quantity: 3})
	a.seed([]*catalog.Product{chair}, o)

	created := decode[servers.Pick](t, a.do(http.MethodPost, "/api/v1/picks", servers.PickInput{OrderId: o.ID().Bytes()}))
	pickPath := "/api/v1/picks/" + created.Id.String()
	require.Equal(t, http.StatusOK, a.do(http.MethodPost, pickPath+"/scan", servers.ScanInput{Barcode: "C1"}).Code)

	rec := a.do(http.MethodPost, pickPath+"/partial", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, servers.PickStatusPartial, decode[servers.Pick](t, rec).Status)

	orderDetail := decode[servers.OrderDetail](t, a.do(http.MethodGet, "/api/v1/orders/"+o.ID().Bytes().String(), nil))
	assert.Equal(t, "PARTIALLY_FULFILLED", orderDetail.FulfillmentStatus)
	require.NotNil(t, orderDetail.OpenPick)
	assert.Equal(t, created.Id, orderDetail.OpenPick.Id)

	rec = a.do(http.MethodPost, pickPath+"/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, servers.PickStatusPending, decode[servers.Pick](t, rec).Status)

	detail := decode[servers.PickDetail](t, a.do(http.MethodGet, pickPath, nil))
	assert.Empty(t, detail.Scans)
	assert.Equal(t, "NOT_FULFILLED", detail.Order.FulfillmentStatus)
}

func TestAPI_Errors(t *testing.T) {
	a := newAPI(t, fakeSource{})
	desk := storagetest.Product(t, "DESK", "B1")
	lamp := storagetest.Product(t, "LAMP", "L1")
	o := storagetest.Order(t, "1003", storagetest.Line{Product: desk, Quantity: 1})
	a.seed([]*catalog.Product{desk, lamp}, o)

	created := decode[servers.Pick](t, a.do(http.MethodPost, "/api/v1/picks", servers.PickInput{OrderId: o.ID().Bytes()}))
	pickPath := "/api/v1/picks/" + created.Id.String()

	t.Run("unknown barcode", func(t *testing.T) {
		rec := a.do(http.MethodPost, pickPath+"/scan", servers.ScanInput{Barcode: "000"})
		assertError(t, rec, http.StatusBadRequest, servers.UnknownBarcode)
	})

	t.Run("barcode of another product", func(t *testing.T) {
		rec := a.do(http.MethodPost, pickPath+"/scan", servers.ScanInput{Barcode: "L1"})
		assertError(t, rec, http.StatusBadRequest, servers.UnexpectedBarcode)
	})

	t.Run("blank barcode", func(t *testing.T) {
		rec := a.do(http.MethodPost, pickPath+"/scan", servers.ScanInput{Barcode: "  "})
		assertError(t, rec, http.StatusBadRequest, servers.InvalidInput)
	})

	t.Run("body without barcode", func(t *testing.T) {
		rec := a.do(http.MethodPost, pickPath+"/scan", map[string]any{})
		assertError(t, rec, http.StatusBadRequest, servers.InvalidInput)
	})

	t.Run("unknown pick", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/api/v1/picks/"+uuid.NewString(), nil)
		assertError(t, rec, http.StatusNotFound, servers.NotFound)
	})

	t.Run("malformed pick id", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/api/v1/picks/not-a-uuid", nil)
		assertError(t, rec, http.StatusBadRequest, servers.InvalidInput)
	})

	t.Run("pick for unknown order", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/picks", servers.PickInput{OrderId: uuid.New()})
		assertError(t, rec, http.StatusNotFound, servers.NotFound)
	})

	t.Run("duplicate sku", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/products", servers.ProductInput{Sku: "DESK", Name: "Another desk"})
		assertError(t, rec, http.StatusConflict, servers.Conflict)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/api/v1/nothing-here", nil)
		assertError(t, rec, http.StatusNotFound, servers.NotFound)
	})
}

func TestAPI_Catalog(t *testing.T) {
	a := newAPI(t, fakeSource{})

	price := "129.90"
	rec := a.do(http.MethodPost, "/api/v1/products", servers.ProductInput{Sku: "TABLE", Name: "Table", Price: &price})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	productID := decode[servers.Created](t, rec).Id
	productPath := "/api/v1/products/" + productID.String()

	weight := "12.5"
	rec = a.do(http.MethodPost, productPath+"/packages", servers.PackageInput{Barcode: "T-TOP", WeightKg: &weight})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	packageID := decode[servers.Created](t, rec).Id

	rec = a.do(http.MethodPost, productPath+"/packages", servers.PackageInput{Barcode: "T-TOP"})
	assertError(t, rec, http.StatusConflict, servers.Conflict)

	packages := decode[[]servers.Package](t, a.do(http.MethodGet, productPath+"/packages", nil))
	require.Len(t, packages, 1)
	assert.Equal(t, 1, packages[0].UnitsPerScan)
	require.NotNil(t, packages[0].WeightKg)
	assert.Equal(t, "12.5", *packages[0].WeightKg)

	rec = a.do(http.MethodPut, productPath, servers.ProductInput{Sku: "TABLE", Name: "Dining table", Price: &price})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	products := decode[[]servers.Product](t, a.do(http.MethodGet, "/api/v1/products", nil))
	require.Len(t, products, 1)
	assert.Equal(t, "Dining table", products[0].Name)
	assert.Equal(t, "129.90", products[0].Price)
	assert.Len(t, products[0].Packages, 1)

	require.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/api/v1/packages/"+packageID.String(), nil).Code)
	require.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, productPath, nil).Code)
	assertError(t, a.do(http.MethodGet, productPath+"/packages", nil), http.StatusNotFound, servers.NotFound)
}

func TestAPI_OrdersAndDeliveryNote(t *testing.T) {
	a := newAPI(t, fakeSource{})
	desk := storagetest.Product(t, "DESK", "B1")
	a.seed([]*catalog.Product{desk})

	qty := 2
	customer := "Ada"
	rec := a.do(http.MethodPost, "/api/v1/orders", servers.OrderInput{
		OrderNumber:  "A/17",
		CustomerName: &customer,
		Items:        []servers.OrderLineInput{{ProductId: desk.ID().Bytes(), Quantity: &qty}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	orderID := decode[servers.Created](t, rec).Id

	orders := decode[[]servers.OrderSummary](t, a.do(http.MethodGet, "/api/v1/orders", nil))
	require.Len(t, orders, 1)
	assert.Equal(t, "A/17", orders[0].OrderNumber)
	assert.Equal(t, 2, orders[0].Quantity)
	assert.Nil(t, orders[0].OpenPick)

	rec = a.do(http.MethodGet, "/api/v1/orders/"+orderID.String()+"/delivery-note?format=txt", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `inline; filename="delivery-note-A-17.txt"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Contains(t, rec.Body.String(), "DELIVERY NOTE")
	assert.Contains(t, rec.Body.String(), "0/2 set")

	rec = a.do(http.MethodGet, "/api/v1/orders/"+orderID.String()+"/delivery-note", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))

	created := decode[servers.Pick](t, a.do(http.MethodPost, "/api/v1/picks", servers.PickInput{OrderId: orderID}))
	rec = a.do(http.MethodGet, "/api/v1/picks/"+created.Id.String()+"/delivery-note?format=xlsx", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))

	rec = a.do(http.MethodGet, "/api/v1/orders/"+orderID.String()+"/delivery-note?format=doc", nil)
	assertError(t, rec, http.StatusBadRequest, servers.InvalidInput)
}

func TestAPI_Inventory(t *testing.T) {
	a := newAPI(t, fakeSource{})
	desk := storagetest.Product(t, "DESK", "B1")
	a.seed([]*catalog.Product{desk})
	productPath := "/api/v1/products/" + desk.ID().Bytes().String()

	name := "Aisle A shelf 1"
	rec := a.do(http.MethodPost, "/api/v1/locations", servers.LocationInput{Code: "A-01", Name: &name})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	loc := decode[servers.Location](t, rec)
	assert.Equal(t, "A-01", loc.Code)
	assert.Equal(t, 0, loc.ProductCount)

	onHand := 4
	rec = a.do(http.MethodPost, productPath+"/assign-location", servers.AssignLocationInput{Code: "B-02", OnHand: &onHand})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	placements := decode[[]servers.ProductLocation](t, a.do(http.MethodGet, productPath+"/locations", nil))
	require.Len(t, placements, 1)
	assert.Equal(t, "B-02", placements[0].Code)
	assert.Equal(t, 4, placements[0].OnHand)

	locations := decode[[]servers.Location](t, a.do(http.MethodGet, "/api/v1/locations", nil))
	assert.Len(t, locations, 2)

	note := "delivery"
	rec = a.do(http.MethodPost, "/api/v1/stock/in", servers.StockMovementInput{ProductId: desk.ID().Bytes(), Qty: 5, Note: &note})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = a.do(http.MethodPost, "/api/v1/stock/out", servers.StockMovementInput{ProductId: desk.ID().Bytes(), Qty: 2})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	movements := decode[[]servers.StockMovement](t, a.do(http.MethodGet, "/api/v1/stock/movements?productId="+desk.ID().Bytes().String(), nil))
	require.Len(t, movements, 2)
	types := []servers.StockMovementType{movements[0].Type, movements[1].Type}
	assert.ElementsMatch(t, []servers.StockMovementType{servers.IN, servers.OUT}, types)

	rec = a.do(http.MethodPost, "/api/v1/stock/in", servers.StockMovementInput{ProductId: desk.ID().Bytes(), Qty: 0})
	assertError(t, rec, http.StatusBadRequest, servers.InvalidInput)
}

func TestAPI_Sync(t *testing.T) {
	source := fakeSource{
		products: []ports.SourceProduct{
			{ExternalID: "p1", Name: "Desk", SKU: "DESK-1", Price: decimal.RequireFromString("99.50")},
		},
		orders: []ports.SourceOrder{{
			Number:       "W-1",
			CustomerName: "Grace",
			Status:       "approved",
			Lines:        []ports.SourceOrderLine{{SKU: "DESK-1", Name: "Desk", Quantity: 2}},
		}},
	}
	a := newAPI(t, source)

	rec := a.do(http.MethodPost, "/api/v1/sync/products", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, servers.SyncProductsReport{Imported: 1}, decode[servers.SyncProductsReport](t, rec))

	rec = a.do(http.MethodPost, "/api/v1/sync/all", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	report := decode[servers.SyncReport](t, rec)
	assert.Equal(t, 1, report.Products.Imported)
	assert.Equal(t, 1, report.Orders.Created)

	orders := decode[[]servers.OrderSummary](t, a.do(http.MethodGet, "/api/v1/orders", nil))
	require.Len(t, orders, 1)
	assert.Equal(t, "W-1", orders[0].OrderNumber)
	assert.Equal(t, "Grace", orders[0].CustomerName)
}

func TestAPI_Health(t *testing.T) {
	a := newAPI(t, fakeSource{})

	rec := a.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	rec = a.do(http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, servers.Health{Status: "ok", Database: "up"}, decode[servers.Health](t, rec))
}
