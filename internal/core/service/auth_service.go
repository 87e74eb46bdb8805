package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopline/commerce-api/internal/core/domain"
	"github.com/shopline/commerce-api/internal/core/ports"
)

const bcryptCost = 12

// AuthService implements registration, login, the per-request auth guard,
// token refresh, and logout.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	denylist ports.TokenDenylist
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, denylist ports.TokenDenylist, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, denylist: denylist, logger: logger}
}

// Register creates a new account and returns it with a fresh token pair.
// Duplicate email or username fails before any row is written.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, ports.TokenPair, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ports.TokenPair{}, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, ports.TokenPair{}, err
	}
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, ports.TokenPair{}, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, ports.TokenPair{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, ports.TokenPair{}, err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, ports.TokenPair{}, err
	}

	pair, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, ports.TokenPair{}, err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return user, pair, nil
}

// Login checks the credentials and returns the user with a fresh token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, ports.TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ports.TokenPair{}, domain.ErrInvalidCredentials
		}
		return nil, ports.TokenPair{}, err
	}

	if !user.IsActive {
		return nil, ports.TokenPair{}, domain.ErrAccountDeactivated
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ports.TokenPair{}, domain.ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, ports.TokenPair{}, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("login successful")
	return user, pair, nil
}

// Authenticate resolves a raw access token to a live user. A token that was
// denylisted by logout, or whose subject no longer exists, is rejected as
// invalid; a token whose subject was deactivated is rejected as deactivated
// even before the token expires.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (*domain.User, error) {
	denied, err := s.denylist.Contains(ctx, rawToken)
	if err != nil {
		return nil, err
	}
	if denied {
		return nil, domain.ErrInvalidToken
	}

	userID, err := s.tokens.VerifyAccess(rawToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrAccountDeactivated
	}

	return user, nil
}

// Refresh mints a new access token from a valid refresh token. The refresh
// token is not rotated; the client keeps using it until it expires.
func (s *AuthService) Refresh(ctx context.Context, rawRefreshToken string) (string, error) {
	userID, err := s.tokens.VerifyRefresh(rawRefreshToken)
	if err != nil {
		return "", err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidRefreshToken
		}
		return "", err
	}
	if !user.IsActive {
		return "", domain.ErrInvalidRefreshToken
	}

	return s.tokens.IssueAccess(user)
}

// Logout denylists the presented access token until its natural expiry so it
// cannot be replayed. Denylist failures are logged but do not fail the
// request: the client is discarding the token either way.
func (s *AuthService) Logout(ctx context.Context, rawToken string, userID int64) error {
	ttl := remainingLifetime(rawToken, time.Now())
	if ttl <= 0 {
		return nil
	}
	if err := s.denylist.Add(ctx, rawToken, ttl); err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to denylist token on logout")
		return nil
	}
	s.logger.Info().Int64("user_id", userID).Msg("user logged out")
	return nil
}

// remainingLifetime extracts the exp claim without re-verifying the
// signature; the caller has already been authenticated with this token.
func remainingLifetime(rawToken string, now time.Time) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(rawToken, claims); err != nil {
		return 0
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}
	return exp.Time.Sub(now)
}
