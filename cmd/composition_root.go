package cmd

import (
	"context"
	"log/slog"

	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/document"
	"warehouse/internal/adapters/out/storage"
	"warehouse/internal/adapters/out/wix"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"
	"warehouse/internal/jobs"
	"warehouse/internal/pkg/keylock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *storage.GormUnitOfWorkFactory
	locker     *keylock.Locker[kernel.UUID]
	source     ports.CatalogSource
	renderers  *document.Registry
	logger     *slog.Logger

	syncHandler commands.SyncCommandHandler
}

// NewCompositionRoot wires the adapters around gormDB. The catalog source
// is the Wix client unless source is given.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger, source ports.CatalogSource) *CompositionRoot {
	if source == nil {
		source = wix.NewClient(config.WixConfig(), logger)
	}

	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: storage.NewGormUnitOfWorkFactory(gormDB),
		locker:     keylock.New[kernel.UUID](),
		source:     source,
		renderers:  document.NewDefaultRegistry(),
		logger:     logger,
	}
	c.syncHandler = commands.NewSyncCommandHandler(
		commands.NewSyncProductsCommandHandler(c.catalogUoWFactory(), source, logger),
		commands.NewSyncOrdersCommandHandler(c.orderUoWFactory(), c.locker, source, logger),
	)
	return c
}

func (c *CompositionRoot) pickUoWFactory() commands.PickUoWFactory {
	return FuncPickUoWFactory(func() commands.PickUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreatePickCommandHandler() commands.CreatePickCommandHandler {
	return commands.NewCreatePickCommandHandler(c.pickUoWFactory())
}

func (c *CompositionRoot) CreateScanBarcodeCommandHandler() commands.ScanBarcodeCommandHandler {
	return commands.NewScanBarcodeCommandHandler(c.pickUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateMarkPickPartialCommandHandler() commands.MarkPickPartialCommandHandler {
	return commands.NewMarkPickPartialCommandHandler(c.pickUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateResetPickCommandHandler() commands.ResetPickCommandHandler {
	return commands.NewResetPickCommandHandler(c.pickUoWFactory(), c.locker, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateAddPackageCommandHandler() commands.AddPackageCommandHandler {
	return commands.NewAddPackageCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRemovePackageCommandHandler() commands.RemovePackageCommandHandler {
	return commands.NewRemovePackageCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() commands.CreateLocationCommandHandler {
	return commands.NewCreateLocationCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateAssignLocationCommandHandler() commands.AssignLocationCommandHandler {
	return commands.NewAssignLocationCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateRecordStockMovementCommandHandler() commands.RecordStockMovementCommandHandler {
	return commands.NewRecordStockMovementCommandHandler(c.inventoryUoWFactory())
}

// SyncCommandHandler is shared by the HTTP triggers, the cron job and the
// CLI so that imports never overlap.
func (c *CompositionRoot) SyncCommandHandler() commands.SyncCommandHandler {
	return c.syncHandler
}

func (c *CompositionRoot) CreateGetPickQueryHandler() queries.GetPickQueryHandler {
	return queries.NewGetPickQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryNoteQueryHandler() queries.GetDeliveryNoteQueryHandler {
	return queries.NewGetDeliveryNoteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPackagesQueryHandler() queries.ListPackagesQueryHandler {
	return queries.NewListPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListLocationsQueryHandler() queries.ListLocationsQueryHandler {
	return queries.NewListLocationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductLocationsQueryHandler() queries.ListProductLocationsQueryHandler {
	return queries.NewListProductLocationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStockMovementsQueryHandler() queries.ListStockMovementsQueryHandler {
	return queries.NewListStockMovementsQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	handlers := httpin.Handlers{
		CreatePick:     c.CreateCreatePickCommandHandler(),
		ScanBarcode:    c.CreateScanBarcodeCommandHandler(),
		MarkPartial:    c.CreateMarkPickPartialCommandHandler(),
		ResetPick:      c.CreateResetPickCommandHandler(),
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		CreateProduct:  c.CreateCreateProductCommandHandler(),
		UpdateProduct:  c.CreateUpdateProductCommandHandler(),
		DeleteProduct:  c.CreateDeleteProductCommandHandler(),
		AddPackage:     c.CreateAddPackageCommandHandler(),
		RemovePackage:  c.CreateRemovePackageCommandHandler(),
		CreateLocation: c.CreateCreateLocationCommandHandler(),
		AssignLocation: c.CreateAssignLocationCommandHandler(),
		RecordMovement: c.CreateRecordStockMovementCommandHandler(),
		Sync:           c.SyncCommandHandler(),

		GetPick:              c.CreateGetPickQueryHandler(),
		ListOrders:           c.CreateListOrdersQueryHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		DeliveryNote:         c.CreateGetDeliveryNoteQueryHandler(),
		ListProducts:         c.CreateListProductsQueryHandler(),
		ListPackages:         c.CreateListPackagesQueryHandler(),
		ListLocations:        c.CreateListLocationsQueryHandler(),
		ListProductLocations: c.CreateListProductLocationsQueryHandler(),
		ListMovements:        c.CreateListStockMovementsQueryHandler(),
	}
	return httpin.NewServer(handlers, c.renderers, c.healthCheck)
}

// CreateJobManager schedules the sync job when a schedule is configured.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.SyncCommandHandler()
	return jobs.NewJobManager(&handler, c.config.SyncSchedule, c.logger)
}

func (c *CompositionRoot) healthCheck(ctx context.Context) error {
	return storage.Ping(ctx, c.gormDB)
}

type FuncPickUoWFactory func() commands.PickUoW

func (f FuncPickUoWFactory) Create() commands.PickUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}
