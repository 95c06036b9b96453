package inventory_test

import (
	"strings"
	"testing"
	"time"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	loc, err := inventory.NewLocation(kernel.NewUUID(), " A-01 ", "Aisle A")
	require.NoError(t, err)
	require.NoError(t, loc.Validate())
	assert.Equal(t, "A-01", loc.Code())
	assert.Equal(t, "Aisle A", loc.Name())

	_, err = inventory.NewLocation(kernel.NewUUID(), "  ", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = inventory.NewLocation(kernel.NewUUID(), strings.Repeat("x", inventory.MaxLocationCodeLength+1), "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewPlacement(t *testing.T) {
	p, err := inventory.NewPlacement(kernel.NewUUID(), kernel.NewUUID(), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, p.OnHand())

	_, err = inventory.NewPlacement(kernel.NewUUID(), kernel.NewUUID(), -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMovement(t *testing.T) {
	kind, err := inventory.ParseMovementType("in")
	require.NoError(t, err)
	assert.Equal(t, inventory.MovementIn, kind)

	_, err = inventory.ParseMovementType("sideways")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	m, err := inventory.NewMovement(kernel.NewUUID(), kernel.NewUUID(), inventory.MovementOut, 2, " shipped ", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "shipped", m.Note())
	assert.Equal(t, inventory.MovementOut, m.Type())

	_, err = inventory.NewMovement(kernel.NewUUID(), kernel.NewUUID(), inventory.MovementIn, 0, "", time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
