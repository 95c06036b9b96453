package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"warehouse/internal/adapters/out/storage"
	"warehouse/internal/adapters/out/storage/storagetest"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/pick"
	"warehouse/internal/pkg/keylock"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type pickUoWFactoryFunc func() commands.PickUoW

func (f pickUoWFactoryFunc) Create() commands.PickUoW { return f() }

type orderUoWFactoryFunc func() commands.OrderUoW

func (f orderUoWFactoryFunc) Create() commands.OrderUoW { return f() }

type catalogUoWFactoryFunc func() commands.CatalogUoW

func (f catalogUoWFactoryFunc) Create() commands.CatalogUoW { return f() }

type inventoryUoWFactoryFunc func() commands.InventoryUoW

func (f inventoryUoWFactoryFunc) Create() commands.InventoryUoW { return f() }

// harness wires the command handlers to a private SQLite database.
type harness struct {
	t       *testing.T
	db      *gorm.DB
	factory *storage.GormUnitOfWorkFactory
	locker  *keylock.Locker[kernel.UUID]
	logger  *slog.Logger
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db := storagetest.SQLite(t)
	return &harness{
		t:       t,
		db:      db,
		factory: storage.NewGormUnitOfWorkFactory(db),
		locker:  keylock.New[kernel.UUID](),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (h *harness) pickUoW() commands.PickUoWFactory {
	return pickUoWFactoryFunc(func() commands.PickUoW { return h.factory.Create() })
}

func (h *harness) orderUoW() commands.OrderUoWFactory {
	return orderUoWFactoryFunc(func() commands.OrderUoW { return h.factory.Create() })
}

func (h *harness) catalogUoW() commands.CatalogUoWFactory {
	return catalogUoWFactoryFunc(func() commands.CatalogUoW { return h.factory.Create() })
}

func (h *harness) inventoryUoW() commands.InventoryUoWFactory {
	return inventoryUoWFactoryFunc(func() commands.InventoryUoW { return h.factory.Create() })
}

func (h *harness) seed(products []*catalog.Product, orders ...*order.Order) {
	h.t.Helper()
	storagetest.Seed(h.t, h.db, products, orders...)
}

func (h *harness) createPick(orderID kernel.UUID) kernel.UUID {
	h.t.Helper()

	handler := commands.NewCreatePickCommandHandler(h.pickUoW())
	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePickCommand(id, orderID)
	require.NoError(h.t, err)
	require.NoError(h.t, handler.Handle(context.Background(), cmd))
	return id
}

func (h *harness) scan(pickID kernel.UUID, barcode string) (commands.ScanBarcodeResult, error) {
	h.t.Helper()

	handler := commands.NewScanBarcodeCommandHandler(h.pickUoW(), h.locker)
	cmd, err := commands.NewScanBarcodeCommand(kernel.NewUUID(), pickID, barcode)
	require.NoError(h.t, err)
	return handler.Handle(context.Background(), cmd)
}

func (h *harness) markPartial(pickID kernel.UUID) error {
	h.t.Helper()

	handler := commands.NewMarkPickPartialCommandHandler(h.pickUoW(), h.locker)
	cmd, err := commands.NewMarkPickPartialCommand(pickID)
	require.NoError(h.t, err)
	return handler.Handle(context.Background(), cmd)
}

func (h *harness) reset(pickID kernel.UUID) error {
	h.t.Helper()

	handler := commands.NewResetPickCommandHandler(h.pickUoW(), h.locker, h.logger)
	cmd, err := commands.NewResetPickCommand(pickID)
	require.NoError(h.t, err)
	return handler.Handle(context.Background(), cmd)
}

func (h *harness) order(id kernel.UUID) *order.Order {
	h.t.Helper()

	o, err := h.factory.Create().OrderRepository().Get(context.Background(), id)
	require.NoError(h.t, err)
	return o
}

func (h *harness) pick(id kernel.UUID) *pick.Pick {
	h.t.Helper()

	p, err := h.factory.Create().PickRepository().Get(context.Background(), id)
	require.NoError(h.t, err)
	return p
}

func (h *harness) scansOf(pickID kernel.UUID) []*pick.Scan {
	h.t.Helper()

	scans, err := h.factory.Create().ScanRepository().ListByPick(context.Background(), pickID)
	require.NoError(h.t, err)
	return scans
}
