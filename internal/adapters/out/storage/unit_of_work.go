// Package storage provides the GORM-backed persistence of the warehouse:
// connection setup for PostgreSQL and SQLite, schema migration and the
// Unit of Work that hands out transaction-scoped repositories.
//
// Usage:
//
//	db, err := storage.Open(storage.Options{Driver: storage.DriverSQLite, SQLitePath: "wms.db"})
//	if err != nil {
//	    return err
//	}
//	if err := storage.Migrate(ctx, db); err != nil {
//	    return err
//	}
//
//	uow := storage.NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
//	// ... modify and save aggregates
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance owns at most one transaction
//   - Multiple goroutines must use separate UnitOfWork instances
//   - On PostgreSQL, OrderRepository().GetForUpdate locks the order row
//     until Commit or Rollback
package storage

import (
	"context"

	"warehouse/internal/adapters/out/storage/catalogrepo"
	"warehouse/internal/adapters/out/storage/inventoryrepo"
	"warehouse/internal/adapters/out/storage/orderrepo"
	"warehouse/internal/adapters/out/storage/pickrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate added or updated during the unit of work.
type TrackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written through its repositories.
//
// Repositories obtained before Begin run on the plain connection; obtain
// them after Begin to take part in the transaction.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []TrackedAggregate
}

// Begin starts the transaction. Calling Begin again while a transaction is
// open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	return nil
}

// Commit finalizes the transaction. It fails with gorm.ErrInvalidTransaction
// when none is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction and the tracked aggregates. It fails
// with gorm.ErrInvalidTransaction when none is open, which makes a deferred
// Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// ProductRepository provides catalog persistence within the unit of work.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return catalogrepo.NewGormProductRepository(uow.conn(), uow)
}

// OrderRepository provides order persistence within the unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// PickRepository provides pick session persistence within the unit of work.
func (uow *GormUnitOfWork) PickRepository() ports.PickRepository {
	return pickrepo.NewGormPickRepository(uow.conn(), uow)
}

// ScanRepository provides the scan log within the unit of work.
func (uow *GormUnitOfWork) ScanRepository() ports.ScanRepository {
	return pickrepo.NewGormScanRepository(uow.conn())
}

func (uow *GormUnitOfWork) LocationRepository() ports.LocationRepository {
	return inventoryrepo.NewGormLocationRepository(uow.conn())
}

func (uow *GormUnitOfWork) MovementRepository() ports.MovementRepository {
	return inventoryrepo.NewGormMovementRepository(uow.conn())
}

// TrackAggregate registers an aggregate as written within this unit of
// work. Repositories call it after a successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written so far, oldest first.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	out := make([]TrackedAggregate, len(uow.trackedAggregates))
	copy(out, uow.trackedAggregates)
	return out
}
