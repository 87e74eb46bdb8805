package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopline/commerce-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       42,
		Username: "alice",
		Email:    "alice@example.com",
		Role:     domain.RoleUser,
		IsActive: true,
	}
}

func TestTokenService_IssueAndVerifyPair(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret")

	pair, err := svc.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair returned error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}

	id, err := svc.VerifyAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("VerifyAccess failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected subject 42, got %d", id)
	}

	id, err = svc.VerifyRefresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("VerifyRefresh failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected subject 42, got %d", id)
	}
}

func TestTokenService_AccessClaims(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret")

	pair, err := svc.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(pair.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("access-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("access token invalid: %v", err)
	}
	if claims["email"] != "alice@example.com" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("missing exp: %v", err)
	}
	iat, err := claims.GetIssuedAt()
	if err != nil {
		t.Fatalf("missing iat: %v", err)
	}
	if got := exp.Sub(iat.Time); got != AccessTokenTTL {
		t.Fatalf("expected access TTL %v, got %v", AccessTokenTTL, got)
	}

	// Refresh token carries the id only.
	refreshClaims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(pair.RefreshToken, refreshClaims, func(token *jwt.Token) (interface{}, error) {
		return []byte("refresh-secret"), nil
	}); err != nil {
		t.Fatalf("refresh token invalid: %v", err)
	}
	if _, ok := refreshClaims["email"]; ok {
		t.Fatalf("refresh token must not carry the email claim")
	}
}

func TestTokenService_SecretsAreNotInterchangeable(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret")

	pair, err := svc.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair returned error: %v", err)
	}

	if _, err := svc.VerifyAccess(pair.RefreshToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for refresh token on access path, got %v", err)
	}
	if _, err := svc.VerifyRefresh(pair.AccessToken); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for access token on refresh path, got %v", err)
	}
}

func TestTokenService_ExpiredAccessToken(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret")

	issued := time.Now()
	svc.now = func() time.Time { return issued }

	pair, err := svc.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair returned error: %v", err)
	}

	// Just before expiry the token still verifies.
	svc.now = func() time.Time { return issued.Add(AccessTokenTTL - time.Second) }
	if _, err := svc.VerifyAccess(pair.AccessToken); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	// Just after expiry it does not.
	svc.now = func() time.Time { return issued.Add(AccessTokenTTL + time.Second) }
	if _, err := svc.VerifyAccess(pair.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}

	// The refresh token outlives the access token by design.
	if _, err := svc.VerifyRefresh(pair.RefreshToken); err != nil {
		t.Fatalf("refresh token should still be valid: %v", err)
	}
	svc.now = func() time.Time { return issued.Add(RefreshTokenTTL + time.Second) }
	if _, err := svc.VerifyRefresh(pair.RefreshToken); !errors.Is(err, domain.ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken after expiry, got %v", err)
	}
}

func TestTokenService_TamperedToken(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret")

	pair, err := svc.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair returned error: %v", err)
	}

	tampered := pair.AccessToken[:len(pair.AccessToken)-2] + "xx"
	if _, err := svc.VerifyAccess(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}

	if _, err := svc.VerifyAccess("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}
