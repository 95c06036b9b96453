package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("pick", "42")

		assert.Equal(t, "pick", err.ParamName)
		assert.Equal(t, "42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: pick 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("order", "A-100", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: order A-100 (cause: record not found)", err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("barcode", "869000111")

	assert.Equal(t, "object already exists: barcode 869000111", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)

	withCause := errs.NewObjectAlreadyExistsErrorWithCause("sku", "SKU-1", errors.New("duplicated key"))
	assert.Equal(t, "object already exists: sku SKU-1 (cause: duplicated key)", withCause.Error())
}

func TestObjectIsReferencedError(t *testing.T) {
	err := errs.NewObjectIsReferencedErrorWithCause("product", "42", errors.New("foreign key"))

	assert.Equal(t, "object is referenced: product 42 (cause: foreign key)", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectIsReferenced)
}

func TestValueErrors(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("unitsPerScan")

		assert.Equal(t, "value is invalid: unitsPerScan", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", errors.New("7 is not a valid status"))

		assert.Equal(t, "value is invalid: status (cause: 7 is not a valid status)", err.Error())
	})

	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("barcode")

		assert.Equal(t, "value is required: barcode", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("pickedQty", 3, 0, 2)

		assert.Equal(t, 3, err.Value)
		assert.Equal(t, "value is out of range: pickedQty is 3, min value is 0, max value is 2", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("values are kept on a single line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestScanErrors(t *testing.T) {
	unknown := errs.NewBarcodeIsUnknownError("000")
	assert.Equal(t, "barcode is unknown: 000", unknown.Error())
	require.ErrorIs(t, unknown, errs.ErrBarcodeIsUnknown)

	unexpected := errs.NewBarcodeIsUnexpectedError("B1", "1001")
	assert.Equal(t, "barcode is not expected on this order: B1 (order 1001)", unexpected.Error())
	require.ErrorIs(t, unexpected, errs.ErrBarcodeIsUnexpected)

	over := errs.NewBarcodeIsOverScannedError("B1", 2, 2)
	assert.Equal(t, "barcode is already scanned enough for this order: B1 scanned 2 of 2", over.Error())
	require.ErrorIs(t, over, errs.ErrBarcodeIsOverScanned)
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("scan failed: %w", errs.NewBarcodeIsOverScannedError("B2", 4, 4))

	require.ErrorIs(t, wrapped, errs.ErrBarcodeIsOverScanned)
	require.NotErrorIs(t, wrapped, errs.ErrBarcodeIsUnknown)

	var target *errs.BarcodeIsOverScannedError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, 4, target.Allowed)
}
