// Package http exposes the application's use cases over a JSON HTTP API
// built on Echo. Responses use a uniform envelope: successful calls carry a
// data field, failures carry an error object with a stable machine-readable
// code.
package http

import (
	"net/http"

	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
}

// ErrorBody carries a machine-readable code from the closed error code set,
// a human-readable message, and optional details.
type ErrorBody struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
}

func respondData(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, Envelope{Data: data})
}

func respondError(ctx echo.Context, err error) error {
	code := errs.CodeFor(err)
	return ctx.JSON(statusForCode(code), Envelope{
		Error: &ErrorBody{
			Code:    code,
			Message: err.Error(),
		},
	})
}

// statusForCode maps the closed error code set to HTTP status codes.
// Immutability violations surface as 409 rather than 500: the request was
// well formed, the ledger just refuses rewrites.
func statusForCode(code errs.Code) int {
	switch code {
	case errs.CodeNotFound:
		return http.StatusNotFound
	case errs.CodeAlreadyExists:
		return http.StatusConflict
	case errs.CodeValidationError:
		return http.StatusBadRequest
	case errs.CodePermissionDenied:
		return http.StatusForbidden
	case errs.CodeImmutableViolation:
		return http.StatusConflict
	case errs.CodeDatabaseError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
