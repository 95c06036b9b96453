package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/generated/servers"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorBody(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   servers.ErrorKind
	}{
		{"not found", errs.NewObjectNotFoundError("pick", "42"), http.StatusNotFound, servers.NotFound},
		{"unknown barcode", errs.NewBarcodeIsUnknownError("000"), http.StatusBadRequest, servers.UnknownBarcode},
		{"unexpected barcode", errs.NewBarcodeIsUnexpectedError("B1", "1001"), http.StatusBadRequest, servers.UnexpectedBarcode},
		{"over scanned", errs.NewBarcodeIsOverScannedError("B1", 2, 2), http.StatusBadRequest, servers.OverScanned},
		{"duplicate", errs.NewObjectAlreadyExistsError("sku", "SKU-1"), http.StatusConflict, servers.Conflict},
		{"referenced", errs.NewObjectIsReferencedErrorWithCause("product", "42", errors.New("fk")), http.StatusConflict, servers.Conflict},
		{"required", errs.NewValueIsRequiredError("barcode"), http.StatusBadRequest, servers.InvalidInput},
		{"invalid", errs.NewValueIsInvalidError("format"), http.StatusBadRequest, servers.InvalidInput},
		{"out of range", errs.NewValueIsOutOfRangeError("qty", 0, 1, 10), http.StatusBadRequest, servers.InvalidInput},
		{"wrapped", fmt.Errorf("scan: %w", errs.NewBarcodeIsUnknownError("1")), http.StatusBadRequest, servers.UnknownBarcode},
		{"echo bad request", echo.NewHTTPError(http.StatusBadRequest, "bad body"), http.StatusBadRequest, servers.InvalidInput},
		{"echo not found", echo.ErrNotFound, http.StatusNotFound, servers.NotFound},
		{"echo method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, servers.InvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := httpin.ErrorBody(tt.err)

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, tt.kind, body.Kind)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestErrorBody_HidesInternalMessages(t *testing.T) {
	status, body := httpin.ErrorBody(errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, servers.Internal, body.Kind)
	assert.Equal(t, "Internal Server Error", body.Message)
}

func TestErrorBody_KeepsDomainMessages(t *testing.T) {
	_, body := httpin.ErrorBody(errs.NewBarcodeIsOverScannedError("B1", 2, 2))

	assert.Equal(t, "barcode is already scanned enough for this order: B1 scanned 2 of 2", body.Message)
}
