package ports

import (
	"context"
	"time"
)

// TokenDenylist records access tokens that must be rejected before their
// natural expiry. Logout adds the presented token with a TTL matching its
// remaining lifetime; the auth guard consults the list on every request.
type TokenDenylist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}
