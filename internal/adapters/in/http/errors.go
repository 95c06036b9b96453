package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"warehouse/internal/generated/servers"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// problem is the classification of an error for the client.
type problem struct {
	status int
	kind   servers.ErrorKind
}

var (
	errorProblems = []struct {
		target error
		problem
	}{
		{errs.ErrBarcodeIsUnknown, problem{http.StatusBadRequest, servers.UnknownBarcode}},
		{errs.ErrBarcodeIsUnexpected, problem{http.StatusBadRequest, servers.UnexpectedBarcode}},
		{errs.ErrBarcodeIsOverScanned, problem{http.StatusBadRequest, servers.OverScanned}},
		{errs.ErrObjectNotFound, problem{http.StatusNotFound, servers.NotFound}},
		{errs.ErrObjectAlreadyExists, problem{http.StatusConflict, servers.Conflict}},
		{errs.ErrObjectIsReferenced, problem{http.StatusConflict, servers.Conflict}},
		{errs.ErrValueIsRequired, problem{http.StatusBadRequest, servers.InvalidInput}},
		{errs.ErrValueIsInvalid, problem{http.StatusBadRequest, servers.InvalidInput}},
		{errs.ErrValueIsOutOfRange, problem{http.StatusBadRequest, servers.InvalidInput}},
	}

	internalProblem = problem{http.StatusInternalServerError, servers.Internal}
)

func classify(err error) problem {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch {
		case he.Code == http.StatusNotFound:
			return problem{he.Code, servers.NotFound}
		case he.Code == http.StatusConflict:
			return problem{he.Code, servers.Conflict}
		case he.Code >= http.StatusInternalServerError:
			return problem{he.Code, servers.Internal}
		default:
			return problem{he.Code, servers.InvalidInput}
		}
	}

	for _, p := range errorProblems {
		if errors.Is(err, p.target) {
			return p.problem
		}
	}
	return internalProblem
}

// ErrorBody renders err as the JSON error document. Messages of internal
// errors are not exposed.
func ErrorBody(err error) (int, servers.Error) {
	p := classify(err)

	message := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		message = fmt.Sprint(he.Message)
		if he.Internal != nil {
			message += ": " + he.Internal.Error()
		}
	}
	if p.kind == servers.Internal {
		message = http.StatusText(p.status)
	}

	return p.status, servers.Error{Code: p.status, Kind: p.kind, Message: message}
}

// NewErrorHandler replaces echo's default error handler.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := ErrorBody(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"error", err,
			)
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, body)
		}
		if werr != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", werr)
		}
	}
}
