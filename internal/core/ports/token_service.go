package ports

import "github.com/shopline/commerce-api/internal/core/domain"

// TokenPair carries the two credentials minted on registration and login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService mints and verifies the signed credentials. Access and refresh
// tokens are signed with distinct secrets; verification of one kind never
// accepts a token of the other.
type TokenService interface {
	IssuePair(user *domain.User) (TokenPair, error)
	IssueAccess(user *domain.User) (string, error)
	// VerifyAccess returns the subject user id, or domain.ErrInvalidToken on
	// any structural, signature, or expiry failure.
	VerifyAccess(raw string) (int64, error)
	// VerifyRefresh returns the subject user id, or
	// domain.ErrInvalidRefreshToken on any failure.
	VerifyRefresh(raw string) (int64, error)
}
