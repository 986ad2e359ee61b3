package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medilog/medilog-api/internal/api/handler"
	"github.com/medilog/medilog-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the
//     client (detail is included only at debug level).
//   - Renders the uniform envelope: {"success": false, "message": ..., "data": ...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, data := resolveError(err, log, c)
		_ = c.JSON(code, handler.Response{Success: false, Message: msg, Data: data})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, interface{}) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	// Malformed input carries field-level messages in the data slot.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "Validation failed", ve.Fields
	}

	// Known domain errors yield deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "Authentication required", nil
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error(), nil
	case errors.Is(err, domain.ErrEmailExists):
		return http.StatusConflict, err.Error(), nil
	case errors.Is(err, domain.ErrFlagNameExists):
		return http.StatusConflict, err.Error(), nil
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, err.Error(), nil
	case errors.Is(err, domain.ErrFlagNotFound):
		return http.StatusNotFound, err.Error(), nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	msg := "An unexpected error occurred"
	if log.GetLevel() <= zerolog.DebugLevel {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return http.StatusInternalServerError, msg, nil
}
