package queries_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/storage"
	"warehouse/internal/adapters/out/storage/storagetest"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/pick"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// QueryHandlersTestSuite runs the read models against SQLite and, when a
// container runtime is available, PostgreSQL.
type QueryHandlersTestSuite struct {
	suite.Suite
	db   *gorm.DB
	stop func()

	table *catalog.Product
	lamp  *catalog.Product
	order *order.Order
}

func TestQueryHandlersSQLite(t *testing.T) {
	suite.Run(t, &QueryHandlersTestSuite{})
}

func TestQueryHandlersPostgres(t *testing.T) {
	pg := storagetest.StartPostgres(t)
	suite.Run(t, &QueryHandlersTestSuite{
		db:   pg.DB,
		stop: func() { _ = pg.Terminate(context.Background()) },
	})
}

func (s *QueryHandlersTestSuite) SetupSuite() {
	if s.db == nil {
		s.db = storagetest.SQLite(s.T())
	}
}

func (s *QueryHandlersTestSuite) TearDownSuite() {
	if s.stop != nil {
		s.stop()
	}
}

func (s *QueryHandlersTestSuite) SetupTest() {
	s.Require().NoError(storagetest.Truncate(s.db))

	s.table = storagetest.Product(s.T(), "TABLE", "T-TOP", "T-LEGS")
	s.lamp = storagetest.Product(s.T(), "LAMP", "L-1")
	s.order = storagetest.Order(s.T(), "5001",
		storagetest.Line{Product: s.table, Quantity: 2},
		storagetest.Line{Product: s.lamp, Quantity: 1},
	)
	lampItem, _ := s.order.ItemForProduct(s.lamp.ID())
	s.Require().NoError(s.order.RecordPickedSets(lampItem.ID(), 1))

	storagetest.Seed(s.T(), s.db, []*catalog.Product{s.table, s.lamp}, s.order)
}

// addPick stores a pick and one scan per barcode.
func (s *QueryHandlersTestSuite) addPick(
	o *order.Order,
	status pick.Status,
	createdAt time.Time,
	barcodes ...string,
) *pick.Pick {
	ctx := context.Background()
	uow := storage.NewGormUnitOfWorkFactory(s.db).Create()
	s.Require().NoError(uow.Begin(ctx))

	p, err := pick.RestorePick(kernel.NewUUID(), o.ID(), status, createdAt)
	s.Require().NoError(err)
	s.Require().NoError(uow.PickRepository().Add(ctx, p))

	for i, raw := range barcodes {
		barcode, err := kernel.NewBarcode(raw)
		s.Require().NoError(err)
		pkg, err := uow.ProductRepository().FindPackageByBarcode(ctx, barcode)
		s.Require().NoError(err)
		item, ok := o.ItemForProduct(pkg.ProductID())
		s.Require().True(ok)

		scan, err := pick.NewScan(kernel.NewUUID(), pick.ScanRefs{
			PickID:      p.ID(),
			OrderItemID: item.ID(),
			ProductID:   pkg.ProductID(),
			PackageID:   pkg.ID(),
		}, barcode, createdAt.Add(time.Duration(i+1)*time.Second))
		s.Require().NoError(err)
		s.Require().NoError(uow.ScanRepository().Add(ctx, scan))
	}

	s.Require().NoError(uow.Commit(ctx))
	return p
}

func (s *QueryHandlersTestSuite) TestGetPick_ReturnsOrderItemsAndOwnScans() {
	base := time.Now().UTC().Truncate(time.Second)
	own := s.addPick(s.order, pick.StatusActive, base, "T-TOP", "L-1")
	s.addPick(s.order, pick.StatusPartial, base.Add(-time.Hour), "T-LEGS")

	query, err := queries.NewGetPickQuery(own.ID())
	s.Require().NoError(err)
	resp, err := queries.NewGetPickQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().NoError(err)

	s.Equal(own.ID(), resp.Pick.ID)
	s.Equal(pick.StatusActive, resp.Pick.Status)
	s.True(resp.Pick.CreatedAt.Equal(base))
	s.Equal(s.order.ID(), resp.Order.ID)
	s.Equal("5001", resp.Order.Number)
	s.Equal(order.StatusOpen, resp.Order.Status)

	s.Require().Len(resp.Items, 2)
	s.Equal("TABLE", resp.Items[0].SKU)
	s.Equal(2, resp.Items[0].Quantity)
	s.Require().Len(resp.Items[0].Packages, 2)
	s.Equal("T-TOP", resp.Items[0].Packages[0].Barcode)
	s.Equal(1, resp.Items[1].PickedQty)

	s.Require().Len(resp.Scans, 2)
	s.Equal("T-TOP", resp.Scans[0].Barcode)
	s.Equal("L-1", resp.Scans[1].Barcode)
}

func (s *QueryHandlersTestSuite) TestGetPick_Unknown() {
	query, err := queries.NewGetPickQuery(kernel.NewUUID())
	s.Require().NoError(err)

	_, err = queries.NewGetPickQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = queries.NewGetPickQueryHandler(s.db).Handle(context.Background(), queries.GetPickQuery{})
	s.Require().ErrorIs(err, queries.ErrGetPickQueryIsNotConstructed)
}

func (s *QueryHandlersTestSuite) TestListOrders_ShowsLatestOpenPick() {
	base := time.Now().UTC().Truncate(time.Second)
	s.addPick(s.order, pick.StatusPartial, base.Add(-2*time.Hour))
	latest := s.addPick(s.order, pick.StatusPending, base.Add(-time.Hour))
	s.addPick(s.order, pick.StatusCompleted, base)

	done := storagetest.Order(s.T(), "5002", storagetest.Line{Product: s.lamp, Quantity: 1})
	storagetest.Seed(s.T(), s.db, nil, done)
	s.addPick(done, pick.StatusCompleted, base)

	result, err := queries.NewListOrdersQueryHandler(s.db).Handle(context.Background(), queries.NewListOrdersQuery())
	s.Require().NoError(err)
	s.Require().Len(result, 2)

	byNumber := make(map[string]queries.OrderSummary, len(result))
	for _, o := range result {
		byNumber[o.Number] = o
	}

	first := byNumber["5001"]
	s.Equal(2, first.ItemCount)
	s.Equal(3, first.Quantity)
	s.Equal(1, first.PickedQty)
	s.Require().NotNil(first.OpenPick)
	s.Equal(latest.ID(), first.OpenPick.ID)
	s.Equal(pick.StatusPending, first.OpenPick.Status)

	s.Nil(byNumber["5002"].OpenPick)
}

func (s *QueryHandlersTestSuite) TestGetOrder() {
	query, err := queries.NewGetOrderQuery(s.order.ID())
	s.Require().NoError(err)

	resp, err := queries.NewGetOrderQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().NoError(err)
	s.Equal("Customer 5001", resp.CustomerName)
	s.Equal(order.FulfillmentNone, resp.FulfillmentStatus)
	s.Nil(resp.OpenPick)
	s.Require().Len(resp.Items, 2)
	s.Equal("LAMP", resp.Items[1].SKU)

	missing, err := queries.NewGetOrderQuery(kernel.NewUUID())
	s.Require().NoError(err)
	_, err = queries.NewGetOrderQueryHandler(s.db).Handle(context.Background(), missing)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *QueryHandlersTestSuite) TestGetDeliveryNote() {
	query, err := queries.NewGetDeliveryNoteQuery(s.order.ID())
	s.Require().NoError(err)

	note, err := queries.NewGetDeliveryNoteQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().NoError(err)
	s.Equal("5001", note.OrderNumber)
	s.Equal("open", note.Status)
	s.False(note.PrintedAt.IsZero())
	s.Require().Len(note.Lines, 2)
	s.Equal("Product TABLE", note.Lines[0].ProductName)
	s.Equal(0, note.Lines[0].PickedQty)
	s.Equal(2, note.Lines[0].Quantity)
	s.Equal(1, note.Lines[1].PickedQty)
}

func (s *QueryHandlersTestSuite) TestListProducts_WithPackagesAndLocations() {
	ctx := context.Background()
	uow := storage.NewGormUnitOfWorkFactory(s.db).Create()
	s.Require().NoError(uow.Begin(ctx))
	for _, code := range []string{"B-2", "A-1"} {
		loc, err := inventory.NewLocation(kernel.NewUUID(), code, "")
		s.Require().NoError(err)
		s.Require().NoError(uow.LocationRepository().Add(ctx, loc))
		placement, err := inventory.NewPlacement(s.table.ID(), loc.ID(), 3)
		s.Require().NoError(err)
		s.Require().NoError(uow.LocationRepository().SavePlacement(ctx, placement))
	}
	s.Require().NoError(uow.Commit(ctx))

	result, err := queries.NewListProductsQueryHandler(s.db).Handle(ctx, queries.NewListProductsQuery())
	s.Require().NoError(err)
	s.Require().Len(result, 2)

	s.Equal("LAMP", result[0].SKU)
	s.Empty(result[0].Locations)
	s.Len(result[0].Packages, 1)

	s.Equal("TABLE", result[1].SKU)
	s.Equal([]string{"A-1", "B-2"}, result[1].Locations)
	s.Len(result[1].Packages, 2)
	s.True(result[1].Price.IsZero())
}

func (s *QueryHandlersTestSuite) TestListPackages() {
	ctx := context.Background()
	handler := queries.NewListPackagesQueryHandler(s.db)

	query, err := queries.NewListPackagesQuery(s.table.ID())
	s.Require().NoError(err)
	packages, err := handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.Require().Len(packages, 2)
	s.Equal("T-TOP", packages[0].Barcode)
	s.Equal("T-LEGS", packages[1].Barcode)

	query, err = queries.NewListPackagesQuery(kernel.NewUUID())
	s.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *QueryHandlersTestSuite) TestInventoryQueries() {
	ctx := context.Background()
	uow := storage.NewGormUnitOfWorkFactory(s.db).Create()
	s.Require().NoError(uow.Begin(ctx))

	loc, err := inventory.NewLocation(kernel.NewUUID(), "C-3", "Cold room")
	s.Require().NoError(err)
	s.Require().NoError(uow.LocationRepository().Add(ctx, loc))
	empty, err := inventory.NewLocation(kernel.NewUUID(), "D-4", "")
	s.Require().NoError(err)
	s.Require().NoError(uow.LocationRepository().Add(ctx, empty))
	placement, err := inventory.NewPlacement(s.lamp.ID(), loc.ID(), 9)
	s.Require().NoError(err)
	s.Require().NoError(uow.LocationRepository().SavePlacement(ctx, placement))

	base := time.Now().UTC().Truncate(time.Second)
	for i, kind := range []inventory.MovementType{inventory.MovementIn, inventory.MovementOut} {
		m, err := inventory.NewMovement(kernel.NewUUID(), s.lamp.ID(), kind, i+1, "", base.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(err)
		s.Require().NoError(uow.MovementRepository().Add(ctx, m))
	}
	m, err := inventory.NewMovement(kernel.NewUUID(), s.table.ID(), inventory.MovementIn, 5, "restock", base)
	s.Require().NoError(err)
	s.Require().NoError(uow.MovementRepository().Add(ctx, m))
	s.Require().NoError(uow.Commit(ctx))

	locations, err := queries.NewListLocationsQueryHandler(s.db).Handle(ctx, queries.NewListLocationsQuery())
	s.Require().NoError(err)
	s.Require().Len(locations, 2)
	s.Equal("C-3", locations[0].Code)
	s.Equal(1, locations[0].ProductCount)
	s.Equal(0, locations[1].ProductCount)

	placementsQuery, err := queries.NewListProductLocationsQuery(s.lamp.ID())
	s.Require().NoError(err)
	placements, err := queries.NewListProductLocationsQueryHandler(s.db).Handle(ctx, placementsQuery)
	s.Require().NoError(err)
	s.Require().Len(placements, 1)
	s.Equal("Cold room", placements[0].Name)
	s.Equal(9, placements[0].OnHand)

	lampID := s.lamp.ID()
	movementsQuery, err := queries.NewListStockMovementsQuery(&lampID, 0)
	s.Require().NoError(err)
	movements, err := queries.NewListStockMovementsQueryHandler(s.db).Handle(ctx, movementsQuery)
	s.Require().NoError(err)
	s.Require().Len(movements, 2)
	s.Equal(inventory.MovementOut, movements[0].Type)
	s.Equal("LAMP", movements[0].SKU)

	allQuery, err := queries.NewListStockMovementsQuery(nil, 2)
	s.Require().NoError(err)
	all, err := queries.NewListStockMovementsQueryHandler(s.db).Handle(ctx, allQuery)
	s.Require().NoError(err)
	s.Len(all, 2)
}
