package ports

import (
	"context"

	"github.com/shopline/commerce-api/internal/core/domain"
)

// CreateUserInput carries the fields an admin supplies when creating a user
// directly. IsActive defaults to true when nil.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
	IsActive *bool
}

// UpdateUserInput carries partial updates; nil fields are left untouched.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Role     *string
	IsActive *bool
}

// UserService implements the admin-only user management surface.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	// Delete removes a user. Admins cannot delete their own account, so
	// actorID is checked against id before anything is touched.
	Delete(ctx context.Context, id, actorID int64) (*domain.User, error)
}
