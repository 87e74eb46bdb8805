package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopline/commerce-api/internal/api/middleware"
	"github.com/shopline/commerce-api/internal/core/domain"
)

// currentUser extracts the authenticated user injected by the Auth
// middleware. Its presence proves the middleware ran; a handler reached
// without it is a routing mistake, answered with 401 rather than a panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.ContextKeyUser).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return user, nil
}

// rawToken returns the bearer token the Auth middleware validated.
func rawToken(c echo.Context) string {
	token, _ := c.Get(middleware.ContextKeyToken).(string)
	return token
}
