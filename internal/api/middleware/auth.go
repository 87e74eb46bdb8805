package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopline/commerce-api/internal/api/metrics"
	"github.com/shopline/commerce-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextKeyUser  = "user"
	ContextKeyToken = "token"
)

// Auth extracts the bearer token, resolves it to a live user through the
// auth service, and injects the user and raw token into the request context.
// The check runs on every protected route; the service rejects expired,
// tampered, denylisted, and deactivated-subject tokens.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}

			c.Set(ContextKeyUser, user)
			c.Set(ContextKeyToken, parts[1])

			return next(c)
		}
	}
}
