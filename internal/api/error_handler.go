package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopline/commerce-api/internal/core/domain"
)

// errorEnvelope is the canonical envelope for all API errors. Validation
// failures additionally carry the individual field violations.
type errorEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"success": false, "message": "...",
//     "errors": [...]}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, envelope := resolveError(err, log, c)
		_ = c.JSON(code, envelope)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorEnvelope) {
	// Validation failures carry the per-field violation list.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorEnvelope{
			Message: "Validation failed",
			Errors:  ve.Violations,
		}
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := fmt.Sprintf("%v", he.Message)
		if he.Code == http.StatusNotFound && msg == "Not Found" {
			// Unmatched route: name the attempted method and path.
			msg = fmt.Sprintf("Endpoint not found: %s %s", c.Request().Method, c.Request().URL.Path)
		}
		return he.Code, errorEnvelope{Message: msg}
	}

	// Known domain errors → deterministic HTTP codes. 400s keep the
	// underlying message because it names the offending field or item.
	switch {
	case errors.Is(err, domain.ErrInvalidItems),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrSelfDeletion):
		return http.StatusBadRequest, errorEnvelope{Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorEnvelope{Message: "Invalid credentials"}
	case errors.Is(err, domain.ErrAccountDeactivated):
		return http.StatusUnauthorized, errorEnvelope{Message: "Account is deactivated"}
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, errorEnvelope{Message: "Invalid token"}
	case errors.Is(err, domain.ErrInvalidRefreshToken):
		return http.StatusUnauthorized, errorEnvelope{Message: "Invalid refresh token"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorEnvelope{Message: "Access forbidden: admin role required"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorEnvelope{Message: "User not found"}
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, errorEnvelope{Message: err.Error()}
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, errorEnvelope{Message: "Order not found"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorEnvelope{Message: "Internal server error"}
}
