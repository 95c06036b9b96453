package commands_test

import (
	"context"
	"testing"

	"warehouse/internal/adapters/out/storage/storagetest"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	create := commands.NewCreateProductCommandHandler(h.catalogUoW())
	update := commands.NewUpdateProductCommandHandler(h.catalogUoW())
	remove := commands.NewDeleteProductCommandHandler(h.catalogUoW())

	id := kernel.NewUUID()
	cmd, err := commands.NewSaveProductCommand(id, commands.ProductFields{
		SKU: "SOFA-3", Name: "Sofa", Description: "Three seats", Price: "899.00",
	})
	require.NoError(t, err)
	require.NoError(t, create.Handle(ctx, cmd))

	sofa := h.productBySKU("SOFA-3")
	assert.Equal(t, "Three seats", sofa.Description())
	assert.Equal(t, "899.00", sofa.Price().String())

	dup, err := commands.NewSaveProductCommand(kernel.NewUUID(), commands.ProductFields{SKU: "SOFA-3", Name: "Copy"})
	require.NoError(t, err)
	require.ErrorIs(t, create.Handle(ctx, dup), errs.ErrObjectAlreadyExists)

	renamed, err := commands.NewSaveProductCommand(id, commands.ProductFields{SKU: "SOFA-3B", Name: "Sofa bed", Price: "950"})
	require.NoError(t, err)
	require.NoError(t, update.Handle(ctx, renamed))

	stored := h.productBySKU("SOFA-3B")
	assert.True(t, stored.ID().IsEqual(id))
	assert.Equal(t, "Sofa bed", stored.Name())
	assert.Empty(t, stored.Description())

	missing, err := commands.NewSaveProductCommand(kernel.NewUUID(), commands.ProductFields{SKU: "X", Name: "X"})
	require.NoError(t, err)
	require.ErrorIs(t, update.Handle(ctx, missing), errs.ErrObjectNotFound)

	del, err := commands.NewDeleteProductCommand(id)
	require.NoError(t, err)
	require.NoError(t, remove.Handle(ctx, del))
	require.ErrorIs(t, remove.Handle(ctx, del), errs.ErrObjectNotFound)
}

func TestDeleteProduct_OnOrderIsReferenced(t *testing.T) {
	h := newHarness(t)
	chair := storagetest.Product(t, "CHAIR", "B1")
	h.seed([]*catalog.Product{chair}, storagetest.Order(t, "3001", storagetest.Line{Product: chair, Quantity: 1}))

	handler := commands.NewDeleteProductCommandHandler(h.catalogUoW())
	cmd, err := commands.NewDeleteProductCommand(chair.ID())
	require.NoError(t, err)

	require.ErrorIs(t, handler.Handle(context.Background(), cmd), errs.ErrObjectIsReferenced)
}

func TestNewSaveProductCommand_Invalid(t *testing.T) {
	_, err := commands.NewSaveProductCommand(kernel.NewUUID(), commands.ProductFields{SKU: "A"})
	require.ErrorIs(t, err, commands.ErrNameIsRequired)

	_, err = commands.NewSaveProductCommand(kernel.NewUUID(), commands.ProductFields{SKU: "A", Name: "A", Price: "-1"})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewSaveProductCommand(kernel.NewUUID(), commands.ProductFields{Name: "A"})
	require.Error(t, err)
}

func TestPackages(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	table := storagetest.Product(t, "TABLE", "T1")
	lamp := storagetest.Product(t, "LAMP", "L1")
	h.seed([]*catalog.Product{table, lamp})

	add := commands.NewAddPackageCommandHandler(h.catalogUoW())
	remove := commands.NewRemovePackageCommandHandler(h.catalogUoW())

	legsID := kernel.NewUUID()
	cmd, err := commands.NewAddPackageCommand(legsID, table.ID(), commands.PackageFields{
		Barcode: "T2", Number: "2", Content: "Legs", WeightKg: "4.25",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cmd.UnitsPerScan())
	require.NoError(t, add.Handle(ctx, cmd))

	stored := h.productBySKU("TABLE")
	require.Len(t, stored.Packages(), 2)
	scansPerSet, err := stored.ScansPerSet()
	require.NoError(t, err)
	assert.Equal(t, 2, scansPerSet)

	taken, err := commands.NewAddPackageCommand(kernel.NewUUID(), lamp.ID(), commands.PackageFields{Barcode: "T2"})
	require.NoError(t, err)
	require.ErrorIs(t, add.Handle(ctx, taken), errs.ErrObjectAlreadyExists)

	orphan, err := commands.NewAddPackageCommand(kernel.NewUUID(), kernel.NewUUID(), commands.PackageFields{Barcode: "Z9"})
	require.NoError(t, err)
	require.ErrorIs(t, add.Handle(ctx, orphan), errs.ErrObjectNotFound)

	rm, err := commands.NewRemovePackageCommand(legsID)
	require.NoError(t, err)
	require.NoError(t, remove.Handle(ctx, rm))
	assert.Len(t, h.productBySKU("TABLE").Packages(), 1)
	require.ErrorIs(t, remove.Handle(ctx, rm), errs.ErrObjectNotFound)

	_, err = commands.NewAddPackageCommand(kernel.NewUUID(), table.ID(), commands.PackageFields{Barcode: "T3", WeightKg: "heavy"})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
