// Package storagetest opens migrated databases for tests: a private
// in-memory SQLite database, or PostgreSQL in a throwaway container.
package storagetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"warehouse/internal/adapters/out/storage"
	"warehouse/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// SQLite returns a migrated in-memory database private to the test. It is
// closed when the test ends.
func SQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := storage.Open(storage.Options{
		Driver:     storage.DriverSQLite,
		SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close(db) })

	require.NoError(t, storage.Migrate(context.Background(), db))
	return db
}

// PostgresContainer is a running PostgreSQL server with the schema applied.
type PostgresContainer struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// StartPostgres starts postgres:15-alpine and migrates it. The test is
// skipped when no container runtime is available.
func StartPostgres(t *testing.T) *PostgresContainer {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := storage.Open(storage.Options{Driver: storage.DriverPostgres, DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(ctx, db))

	return &PostgresContainer{Container: container, DB: db}
}

// Terminate closes the connection and removes the container.
func (p *PostgresContainer) Terminate(ctx context.Context) error {
	_ = storage.Close(p.DB)
	return p.Container.Terminate(ctx)
}

// Truncate empties every table, children first.
func Truncate(db *gorm.DB) error {
	models := storage.Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(models[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func newUnitOfWork(db *gorm.DB) ports.UnitOfWork {
	return storage.NewGormUnitOfWorkFactory(db).Create()
}
