package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hrsuite/personnel-system/internal/core/domain"
)

func TestDirectory_ResolvesFullRoleSet(t *testing.T) {
	users := newStubUserStore()
	roles := newStubRoleStore(
		&domain.Role{ID: "r1", Name: "ADMIN", Active: true},
		&domain.Role{ID: "r2", Name: "MANAGER", Active: true},
	)
	u := seedUser(t, users, "alice", "alice@example.com", "pass", true)
	u.Roles = []domain.UserRole{{RoleID: "r1"}, {RoleID: "r2"}}
	users.users[u.ID] = u

	d := NewDirectory(users, roles, zerolog.Nop())

	got, err := d.FindForAuthentication(context.Background(), "ALICE")
	if err != nil {
		t.Fatalf("FindForAuthentication: %v", err)
	}
	if len(got.ResolvedRoles) != 2 {
		t.Fatalf("expected 2 resolved roles, got %d", len(got.ResolvedRoles))
	}
}

func TestDirectory_DanglingAssociationSkipped(t *testing.T) {
	users := newStubUserStore()
	roles := newStubRoleStore(&domain.Role{ID: "r1", Name: "ADMIN", Active: true})
	u := seedUser(t, users, "bob", "bob@example.com", "pass", true)
	u.Roles = []domain.UserRole{{RoleID: "r1"}, {RoleID: "gone"}}
	users.users[u.ID] = u

	d := NewDirectory(users, roles, zerolog.Nop())

	got, err := d.FindForAuthenticationByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("FindForAuthenticationByID: %v", err)
	}
	if len(got.ResolvedRoles) != 1 || got.ResolvedRoles[0].ID != "r1" {
		t.Fatalf("expected only r1 resolved, got %+v", got.ResolvedRoles)
	}
}

func TestDirectory_RoleStoreFailureFailsLookup(t *testing.T) {
	users := newStubUserStore()
	roles := newStubRoleStore()
	roles.err = errors.New("store down")
	u := seedUser(t, users, "carl", "carl@example.com", "pass", true)
	u.Roles = []domain.UserRole{{RoleID: "r1"}}
	users.users[u.ID] = u

	d := NewDirectory(users, roles, zerolog.Nop())

	if _, err := d.FindForAuthenticationByID(context.Background(), u.ID); err == nil {
		t.Fatalf("expected error when role store unavailable")
	}
}

func TestDirectory_AbsentUser(t *testing.T) {
	d := NewDirectory(newStubUserStore(), newStubRoleStore(), zerolog.Nop())

	if _, err := d.FindForAuthentication(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
