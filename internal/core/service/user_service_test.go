package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopline/commerce-api/internal/core/domain"
	"github.com/shopline/commerce-api/internal/core/ports"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestUserService_Create(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateUserInput{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "secret1",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Role != domain.RoleAdmin || !created.IsActive {
		t.Fatalf("unexpected user: %+v", created)
	}

	// Defaults apply when role and active flag are omitted.
	plain, err := svc.Create(ctx, ports.CreateUserInput{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if plain.Role != domain.RoleUser || !plain.IsActive {
		t.Fatalf("expected default role/active, got %+v", plain)
	}

	if _, err := svc.Create(ctx, ports.CreateUserInput{
		Username: "other",
		Email:    "carol@example.com",
		Password: "secret1",
	}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}
}

func TestUserService_Update(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, zerolog.Nop())
	ctx := context.Background()
	alice := seedUser(t, users, "alice", "alice@example.com", "secret1", true)
	seedUser(t, users, "bob", "bob@example.com", "secret1", true)

	updated, err := svc.Update(ctx, alice.ID, ports.UpdateUserInput{
		Username: strPtr("alice2"),
		Role:     strPtr(domain.RoleAdmin),
		IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Username != "alice2" || updated.Role != domain.RoleAdmin || updated.IsActive {
		t.Fatalf("unexpected user after update: %+v", updated)
	}
	if updated.Email != "alice@example.com" {
		t.Fatalf("email should be untouched, got %q", updated.Email)
	}

	// Taking another account's username is rejected.
	if _, err := svc.Update(ctx, alice.ID, ports.UpdateUserInput{Username: strPtr("bob")}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// Re-submitting your own email is a no-op, not a conflict.
	if _, err := svc.Update(ctx, alice.ID, ports.UpdateUserInput{Email: strPtr("alice@example.com")}); err != nil {
		t.Fatalf("self-identical email should pass, got %v", err)
	}

	if _, err := svc.Update(ctx, 999, ports.UpdateUserInput{}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, zerolog.Nop())
	ctx := context.Background()
	alice := seedUser(t, users, "alice", "alice@example.com", "secret1", true)
	admin := seedUser(t, users, "root", "root@example.com", "secret1", true)

	deleted, err := svc.Delete(ctx, alice.ID, admin.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.ID != alice.ID {
		t.Fatalf("expected deleted user %d, got %d", alice.ID, deleted.ID)
	}
	if _, err := users.FindByID(ctx, alice.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present after delete: %v", err)
	}

	if _, err := svc.Delete(ctx, admin.ID, admin.ID); !errors.Is(err, domain.ErrSelfDeletion) {
		t.Fatalf("expected ErrSelfDeletion, got %v", err)
	}
	if _, err := users.FindByID(ctx, admin.ID); err != nil {
		t.Fatalf("admin must survive a self-delete attempt: %v", err)
	}

	if _, err := svc.Delete(ctx, 999, admin.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
