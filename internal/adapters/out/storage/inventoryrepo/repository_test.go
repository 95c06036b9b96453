package inventoryrepo_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/storage/inventoryrepo"
	"warehouse/internal/adapters/out/storage/storagetest"
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationRepository(t *testing.T) {
	ctx := context.Background()
	db := storagetest.SQLite(t)
	p := storagetest.Product(t, "RUG", "RUG-1")
	storagetest.Seed(t, db, []*catalog.Product{p})
	repo := inventoryrepo.NewGormLocationRepository(db)

	loc, err := inventory.NewLocation(kernel.NewUUID(), "A-01-02", "Aisle A")
	require.NoError(t, err)

	t.Run("should add and find a location by code", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, loc))

		got, err := repo.GetByCode(ctx, "A-01-02")
		require.NoError(t, err)
		assert.Equal(t, loc.ID(), got.ID())
		assert.Equal(t, "Aisle A", got.Name())
	})

	t.Run("should reject a duplicate code", func(t *testing.T) {
		dup, err := inventory.NewLocation(kernel.NewUUID(), "A-01-02", "")
		require.NoError(t, err)
		require.ErrorIs(t, repo.Add(ctx, dup), errs.ErrObjectAlreadyExists)
	})

	t.Run("should report an unknown code", func(t *testing.T) {
		_, err := repo.GetByCode(ctx, "Z-99")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should replace the on-hand count of a placement", func(t *testing.T) {
		first, err := inventory.NewPlacement(p.ID(), loc.ID(), 4)
		require.NoError(t, err)
		require.NoError(t, repo.SavePlacement(ctx, first))

		second, err := inventory.NewPlacement(p.ID(), loc.ID(), 9)
		require.NoError(t, err)
		require.NoError(t, repo.SavePlacement(ctx, second))

		var rows []inventoryrepo.PlacementDTO
		require.NoError(t, db.Find(&rows).Error)
		require.Len(t, rows, 1)
		assert.Equal(t, 9, rows[0].OnHand)
	})
}

func TestMovementRepository(t *testing.T) {
	ctx := context.Background()
	db := storagetest.SQLite(t)
	p := storagetest.Product(t, "VASE", "VASE-1")
	storagetest.Seed(t, db, []*catalog.Product{p})
	repo := inventoryrepo.NewGormMovementRepository(db)

	m, err := inventory.NewMovement(kernel.NewUUID(), p.ID(), inventory.MovementIn, 12, "supplier delivery", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, m))

	var rows []inventoryrepo.MovementDTO
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "IN", rows[0].Type)
	assert.Equal(t, 12, rows[0].Quantity)

	orphan, err := inventory.NewMovement(kernel.NewUUID(), kernel.NewUUID(), inventory.MovementOut, 1, "", time.Now())
	require.NoError(t, err)
	require.ErrorIs(t, repo.Add(ctx, orphan), errs.ErrObjectIsReferenced)
}
