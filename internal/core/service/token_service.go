package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopline/commerce-api/internal/core/domain"
	"github.com/shopline/commerce-api/internal/core/ports"
)

const (
	// AccessTokenTTL is the fixed lifetime of an access token.
	AccessTokenTTL = 15 * time.Minute
	// RefreshTokenTTL is the fixed lifetime of a refresh token.
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenService mints and verifies HS256-signed tokens. Access and refresh
// tokens use separate secrets so one kind can never stand in for the other.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	now           func() time.Time
}

func NewTokenService(accessSecret, refreshSecret string) *TokenService {
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		now:           time.Now,
	}
}

// IssuePair mints an access token and a refresh token for the user. Access
// claims carry the user id and email; refresh claims carry the id only.
func (s *TokenService) IssuePair(user *domain.User) (ports.TokenPair, error) {
	access, err := s.IssueAccess(user)
	if err != nil {
		return ports.TokenPair{}, err
	}

	now := s.now()
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  user.ID,
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	}).SignedString(s.refreshSecret)
	if err != nil {
		return ports.TokenPair{}, err
	}

	return ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueAccess mints a new access token only, used by the refresh flow.
func (s *TokenService) IssueAccess(user *domain.User) (string, error) {
	now := s.now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(AccessTokenTTL).Unix(),
	}).SignedString(s.accessSecret)
}

// VerifyAccess validates signature and expiry against the access secret and
// returns the subject user id.
func (s *TokenService) VerifyAccess(raw string) (int64, error) {
	id, err := s.verify(raw, s.accessSecret)
	if err != nil {
		return 0, domain.ErrInvalidToken
	}
	return id, nil
}

// VerifyRefresh validates signature and expiry against the refresh secret
// and returns the subject user id.
func (s *TokenService) VerifyRefresh(raw string) (int64, error) {
	id, err := s.verify(raw, s.refreshSecret)
	if err != nil {
		return 0, domain.ErrInvalidRefreshToken
	}
	return id, nil
}

func (s *TokenService) verify(raw string, secret []byte) (int64, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tkn.Valid {
		return 0, jwt.ErrTokenUnverifiable
	}

	// Numeric claims decode as float64.
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return 0, jwt.ErrTokenInvalidClaims
	}
	return int64(id), nil
}
