package domain

import (
	"testing"
	"time"
)

type fakeHasher struct{}

func (fakeHasher) Hash(raw string) (string, error) { return "hashed:" + raw, nil }
func (fakeHasher) Matches(raw, hash string) bool   { return hash == "hashed:"+raw }

func TestNewUser_Validation(t *testing.T) {
	if _, err := NewUser("ab", "a@example.com", "pass", fakeHasher{}); err != ErrUsernameTooShort {
		t.Fatalf("expected ErrUsernameTooShort, got %v", err)
	}
	if _, err := NewUser("alice", "a@example.com", "   ", fakeHasher{}); err != ErrPasswordRequired {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
	if _, err := NewUser("alice", "not-an-email", "pass", fakeHasher{}); err != ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestNewUser_HashesPassword(t *testing.T) {
	u, err := NewUser("alice", "alice@example.com", "s3cret", fakeHasher{})
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if u.PasswordHash == "s3cret" {
		t.Fatalf("raw password stored")
	}
	if u.PasswordHash != "hashed:s3cret" {
		t.Fatalf("unexpected hash %q", u.PasswordHash)
	}
	if !u.Active {
		t.Fatalf("new user should be active")
	}
}

func TestAssignRole_Idempotent(t *testing.T) {
	u := &User{Username: "alice"}

	if err := u.AssignRole("r1"); err != nil {
		t.Fatalf("AssignRole: %v", err)
	}
	if err := u.AssignRole("r1"); err != nil {
		t.Fatalf("second AssignRole: %v", err)
	}
	if len(u.Roles) != 1 {
		t.Fatalf("expected exactly one association, got %d", len(u.Roles))
	}
}

func TestAssignRole_EmptyID(t *testing.T) {
	u := &User{Username: "alice"}
	if err := u.AssignRole(""); err != ErrRoleIDRequired {
		t.Fatalf("expected ErrRoleIDRequired, got %v", err)
	}
}

func TestRemoveRole_AbsentIsNoop(t *testing.T) {
	u := &User{Username: "alice"}
	_ = u.AssignRole("r1")
	before := len(u.Roles)

	u.RemoveRole("does-not-exist")

	if len(u.Roles) != before {
		t.Fatalf("role set changed: %d -> %d", before, len(u.Roles))
	}
}

func TestRemoveRole_Present(t *testing.T) {
	u := &User{Username: "alice"}
	_ = u.AssignRole("r1")
	_ = u.AssignRole("r2")

	u.RemoveRole("r1")

	if u.HasRole("r1") {
		t.Fatalf("r1 still present")
	}
	if !u.HasRole("r2") {
		t.Fatalf("r2 lost")
	}
}

func TestClearRoles(t *testing.T) {
	u := &User{Username: "alice"}
	_ = u.AssignRole("r1")
	_ = u.AssignRole("r2")

	u.ClearRoles()

	if len(u.Roles) != 0 {
		t.Fatalf("expected empty role set, got %d", len(u.Roles))
	}
}

func TestAssignRole_TouchesUpdatedAt(t *testing.T) {
	stale := time.Now().UTC().Add(-time.Hour)
	u := &User{Username: "alice", UpdatedAt: stale}

	_ = u.AssignRole("r1")

	if !u.UpdatedAt.After(stale) {
		t.Fatalf("UpdatedAt not touched")
	}
}

func TestDeactivate_KeepsRoles(t *testing.T) {
	u := &User{Username: "alice", Active: true}
	_ = u.AssignRole("r1")

	u.Deactivate()

	if u.Active {
		t.Fatalf("user still active")
	}
	if !u.HasRole("r1") {
		t.Fatalf("deactivation stripped roles")
	}
}
