package http

import (
	"errors"
	"net/http"

	"proteseflow/internal/core/application/usecases/commands"
	"proteseflow/internal/core/application/usecases/queries"
	"proteseflow/internal/generated/servers"
	"proteseflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ErrUnauthorized is returned by the auth middleware for missing, invalid, revoked or
// inactive sessions.
var ErrUnauthorized = errors.New("authentication required")

// statusOf maps an error returned by a command or query handler onto an HTTP status.
func statusOf(err error) int {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, commands.ErrInvalidCredentials),
		errors.Is(err, commands.ErrActorIsRequired),
		errors.Is(err, queries.ErrActorIsRequired):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errs.IsValidation(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler renders handler errors as servers.Error bodies. Internal errors are logged
// and hidden from the client.
func NewErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := statusOf(err)
		body := servers.Error{Code: code, Message: err.Error()}

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			if msg, ok := he.Message.(string); ok {
				body.Message = msg
			} else {
				body.Message = http.StatusText(code)
			}
		case code == http.StatusUnauthorized:
			body.Message = http.StatusText(code)
			if errors.Is(err, commands.ErrInvalidCredentials) {
				body.Message = commands.ErrInvalidCredentials.Error()
			}
		case code == http.StatusUnprocessableEntity:
			body.Message = "validation failed"
			body.Fields = errs.FieldErrors(err)
		case code == http.StatusInternalServerError:
			log.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("request failed")
			body.Message = http.StatusText(code)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, body)
		}
		if writeErr != nil {
			log.Error().Err(writeErr).Msg("write error response")
		}
	}
}
