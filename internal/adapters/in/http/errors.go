package http

import (
	"errors"
	"net/http"

	"rental/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps an application error to an HTTP status and writes the
// uniform error payload. The mapping follows the error classes in errs:
// missing objects are 404, illegal state transitions are 409, malformed
// input is 400, everything else is 500.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Do not leak internals to callers.
		message = "internal server error"
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}
