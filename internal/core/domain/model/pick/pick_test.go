package pick_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/pick"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPick(t *testing.T) {
	orderID := kernel.NewUUID()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))

	p, err := pick.NewPick(kernel.NewUUID(), orderID, at)

	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, pick.StatusActive, p.Status())
	assert.True(t, orderID.IsEqual(p.OrderID()))
	assert.Equal(t, time.UTC, p.CreatedAt().Location())
	assert.True(t, at.Equal(p.CreatedAt()))
}

func TestNewPick_Invalid(t *testing.T) {
	_, err := pick.NewPick(kernel.UUID{}, kernel.UUID{}, time.Now())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = pick.RestorePick(kernel.NewUUID(), kernel.NewUUID(), pick.StatusUnknown, time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.ErrorIs(t, (&pick.Pick{}).Validate(), pick.ErrPickIsNotConstructed)
}

func TestPick_Transitions(t *testing.T) {
	tests := []struct {
		name  string
		from  pick.Status
		apply func(*pick.Pick)
		want  pick.Status
	}{
		{"active to partial", pick.StatusActive, (*pick.Pick).MarkPartial, pick.StatusPartial},
		{"completed to partial", pick.StatusCompleted, (*pick.Pick).MarkPartial, pick.StatusPartial},
		{"pending to partial", pick.StatusPending, (*pick.Pick).MarkPartial, pick.StatusPartial},
		{"active to completed", pick.StatusActive, (*pick.Pick).Complete, pick.StatusCompleted},
		{"pending to completed", pick.StatusPending, (*pick.Pick).Complete, pick.StatusCompleted},
		{"partial to pending", pick.StatusPartial, (*pick.Pick).Reset, pick.StatusPending},
		{"completed to pending", pick.StatusCompleted, (*pick.Pick).Reset, pick.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := pick.RestorePick(kernel.NewUUID(), kernel.NewUUID(), tt.from, time.Now())
			require.NoError(t, err)

			tt.apply(p)

			assert.Equal(t, tt.want, p.Status())
		})
	}
}

func TestStatus_Strings(t *testing.T) {
	for _, s := range []pick.Status{pick.StatusPending, pick.StatusActive, pick.StatusPartial, pick.StatusCompleted} {
		parsed, err := pick.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := pick.ParseStatus("done")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "unknown", pick.Status(42).String())
}

func TestNewScan(t *testing.T) {
	b, err := kernel.NewBarcode("B1")
	require.NoError(t, err)
	refs := pick.ScanRefs{
		PickID:      kernel.NewUUID(),
		OrderItemID: kernel.NewUUID(),
		ProductID:   kernel.NewUUID(),
		PackageID:   kernel.NewUUID(),
	}

	s, err := pick.NewScan(kernel.NewUUID(), refs, b, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	assert.True(t, refs.OrderItemID.IsEqual(s.OrderItemID()))
	assert.Equal(t, "B1", s.Barcode().String())

	refs.PackageID = kernel.UUID{}
	_, err = pick.NewScan(kernel.NewUUID(), refs, b, time.Now())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
