package order_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, orderID kernel.UUID, sku string, quantity int) *order.Item {
	t.Helper()
	s, err := kernel.NewSKU(sku)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), orderID, kernel.NewUUID(), s, sku+" name", quantity)
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	t.Run("should create open order", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, " 1001 ", " Jane Doe ")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "1001", o.Number())
		assert.Equal(t, "Jane Doe", o.CustomerName())
		assert.Equal(t, order.StatusOpen, o.Status())
		assert.Equal(t, order.FulfillmentNone, o.FulfillmentStatus())
		assert.Empty(t, o.Items())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, "  ", "")

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject literal", func(t *testing.T) {
		require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AddItem(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), "1002", "")
	require.NoError(t, err)

	item := newItem(t, o.ID(), "SKU-1", 2)
	require.NoError(t, o.AddItem(item))

	t.Run("should find item by product and id", func(t *testing.T) {
		byProduct, ok := o.ItemForProduct(item.ProductID())
		require.True(t, ok)
		assert.Same(t, item, byProduct)

		byID, ok := o.Item(item.ID())
		require.True(t, ok)
		assert.Same(t, item, byID)

		_, ok = o.ItemForProduct(kernel.NewUUID())
		assert.False(t, ok)
	})

	t.Run("should reject second line for the same product", func(t *testing.T) {
		s, _ := kernel.NewSKU("SKU-1")
		dup, err := order.NewItem(kernel.NewUUID(), o.ID(), item.ProductID(), s, "", 1)
		require.NoError(t, err)

		require.ErrorIs(t, o.AddItem(dup), errs.ErrObjectAlreadyExists)
	})

	t.Run("should reject item of another order", func(t *testing.T) {
		require.ErrorIs(t, o.AddItem(newItem(t, kernel.NewUUID(), "SKU-2", 1)), errs.ErrValueIsInvalid)
	})
}

func TestNewItem(t *testing.T) {
	s, _ := kernel.NewSKU("SKU-1")

	t.Run("should reject zero quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), s, "", 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should reject picked above quantity on restore", func(t *testing.T) {
		_, err := order.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), s, "", 2, 3)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should restore picked quantity", func(t *testing.T) {
		item, err := order.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), s, "Chair", 2, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, item.PickedQty())
		assert.True(t, item.IsFullyPicked())
	})
}

func TestOrder_RecordPickedSets(t *testing.T) {
	o, _ := order.NewOrder(kernel.NewUUID(), "1003", "")
	first := newItem(t, o.ID(), "A", 2)
	second := newItem(t, o.ID(), "B", 1)
	require.NoError(t, o.AddItem(first))
	require.NoError(t, o.AddItem(second))

	require.ErrorIs(t, o.RecordPickedSets(first.ID(), 3), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, o.RecordPickedSets(first.ID(), -1), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, o.RecordPickedSets(kernel.NewUUID(), 1), errs.ErrObjectNotFound)

	require.NoError(t, o.RecordPickedSets(first.ID(), 2))
	assert.False(t, o.IsFullyPicked())
	assert.False(t, o.CompleteIfFullyPicked())
	assert.Equal(t, order.StatusOpen, o.Status())

	require.NoError(t, o.RecordPickedSets(second.ID(), 1))
	assert.True(t, o.IsFullyPicked())
	assert.True(t, o.CompleteIfFullyPicked())
	assert.Equal(t, order.StatusFulfilled, o.Status())
	assert.Equal(t, order.FulfillmentFulfilled, o.EffectiveFulfillmentStatus())
	assert.Equal(t, order.FulfillmentNone, o.FulfillmentStatus())
}

func TestOrder_IsFullyPicked_NoItems(t *testing.T) {
	o, _ := order.NewOrder(kernel.NewUUID(), "1004", "")

	assert.False(t, o.IsFullyPicked())
	assert.False(t, o.CompleteIfFullyPicked())
}

func TestOrder_FulfillmentMarkers(t *testing.T) {
	o, _ := order.NewOrder(kernel.NewUUID(), "1005", "")

	o.MarkPartiallyFulfilled()
	assert.Equal(t, order.FulfillmentPartiallyFulfilled, o.FulfillmentStatus())
	assert.Equal(t, order.FulfillmentPartiallyFulfilled, o.EffectiveFulfillmentStatus())

	o.MarkNotFulfilled()
	assert.Equal(t, order.FulfillmentNotFulfilled, o.FulfillmentStatus())
}

func TestOrder_ChangeItemQuantity(t *testing.T) {
	o, _ := order.NewOrder(kernel.NewUUID(), "1006", "")
	item := newItem(t, o.ID(), "A", 3)
	require.NoError(t, o.AddItem(item))
	require.NoError(t, o.RecordPickedSets(item.ID(), 2))

	require.ErrorIs(t, o.ChangeItemQuantity(item.ID(), 1), errs.ErrValueIsOutOfRange)
	assert.Equal(t, 3, item.Quantity())

	require.NoError(t, o.ChangeItemQuantity(item.ID(), 5))
	assert.Equal(t, 5, item.Quantity())
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	item := newItem(t, id, "A", 1)

	t.Run("should restore state", func(t *testing.T) {
		o, err := order.RestoreOrder(id, "1007", "Bob", order.StatusFulfilled, order.FulfillmentFulfilled, []*order.Item{item})

		require.NoError(t, err)
		assert.Equal(t, order.StatusFulfilled, o.Status())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(id, "1007", "", order.StatusUnknown, order.FulfillmentNone, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
