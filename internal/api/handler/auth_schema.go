package handler

import (
	"time"

	"github.com/shopline/commerce-api/internal/core/domain"
)

// errorEnvelope mirrors the envelope rendered by the central error handler;
// declared here so the swagger annotations can reference it.
type errorEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// --- Request / Response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20,alphanum"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,letterdigit"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// userPayload is the public projection of a user returned by the auth
// endpoints. The password hash never leaves the domain type anyway; this
// keeps the JSON contract independent of internal fields.
type userPayload struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	IsActive  bool       `json:"isActive"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func toUserPayload(u *domain.User, withTimestamps bool) userPayload {
	p := userPayload{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsActive: u.IsActive,
		Role:     u.Role,
	}
	if withTimestamps {
		created, updated := u.CreatedAt, u.UpdatedAt
		p.CreatedAt, p.UpdatedAt = &created, &updated
	}
	return p
}

type authResponse struct {
	Success      bool         `json:"success"`
	Message      string       `json:"message,omitempty"`
	Token        string       `json:"token,omitempty"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	User         *userPayload `json:"user,omitempty"`
}
