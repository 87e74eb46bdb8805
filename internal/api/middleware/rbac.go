package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopline/commerce-api/internal/api/metrics"
	"github.com/shopline/commerce-api/internal/core/domain"
)

// RequireRole enforces role-based access control. It reads the user injected
// by Auth, so it must always run after it; the same check serves every
// admin-gated route instead of being restated per endpoint.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextKeyUser).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
			}
			if _, ok := allowed[user.Role]; !ok {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
