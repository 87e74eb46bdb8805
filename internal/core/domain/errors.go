package domain

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the core services. The API layer maps each of
// these to a deterministic HTTP status; anything else becomes a 500.
var (
	ErrUserExists          = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountDeactivated  = errors.New("account is deactivated")
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrForbidden           = errors.New("access forbidden")
	ErrSelfDeletion        = errors.New("cannot delete your own account")

	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidItems    = errors.New("invalid order items")
)

// ValidationError aggregates individual field violations so the API can
// return them alongside the top-level message.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Violations, "; ")
}
