package ports

import (
	"context"

	"github.com/shopline/commerce-api/internal/core/domain"
)

// AuthService implements registration, login, and the per-request auth guard.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, TokenPair, error)
	// Authenticate resolves a raw access token to a live user. It rejects
	// denylisted or cryptographically invalid tokens with
	// domain.ErrInvalidToken and deactivated accounts with
	// domain.ErrAccountDeactivated. It never mutates state.
	Authenticate(ctx context.Context, rawToken string) (*domain.User, error)
	// Refresh mints a new access token from a valid refresh token. The
	// refresh token itself is not rotated.
	Refresh(ctx context.Context, rawRefreshToken string) (string, error)
	// Logout denylists the presented access token for the remainder of its
	// lifetime. A client that keeps the token anyway is rejected by
	// Authenticate from this point on.
	Logout(ctx context.Context, rawToken string, userID int64) error
}
