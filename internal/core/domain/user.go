package domain

import (
	"net/mail"
	"strings"
	"time"
)

// PasswordHasher is the one-way hashing capability injected into the User
// aggregate. Raw passwords never leave the constructor unhashed.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Matches(raw, hash string) bool
}

// UserRole is the association between a User and a Role. A (userID, roleID)
// pair exists at most once; the aggregate enforces uniqueness on insertion.
type UserRole struct {
	RoleID     string    `json:"role_id"`
	AssignedAt time.Time `json:"assigned_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// User is the aggregate root for an account and its role associations.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email,omitempty"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	Roles        []UserRole `json:"roles"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// ResolvedRoles is populated by the user directory when the account is
	// loaded for authentication. It is derived state, never persisted.
	ResolvedRoles []Role `json:"-"`
}

// NewUser constructs an active User with a hashed password. The raw password
// is passed through the injected hasher and discarded.
func NewUser(username, email, rawPassword string, hasher PasswordHasher) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, ErrUsernameTooShort
	}
	if strings.TrimSpace(rawPassword) == "" {
		return nil, ErrPasswordRequired
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, ErrInvalidEmail
		}
	}

	hash, err := hasher.Hash(rawPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// AssignRole appends a role association. Assigning a role the user already
// holds is a no-op, so repeated assignment is idempotent.
func (u *User) AssignRole(roleID string) error {
	if roleID == "" {
		return ErrRoleIDRequired
	}
	if u.HasRole(roleID) {
		return nil
	}

	now := time.Now().UTC()
	u.Roles = append(u.Roles, UserRole{RoleID: roleID, AssignedAt: now, UpdatedAt: now})
	u.UpdatedAt = now
	return nil
}

// RemoveRole drops the association if present. Removing an absent role is
// not an error.
func (u *User) RemoveRole(roleID string) {
	for i, r := range u.Roles {
		if r.RoleID == roleID {
			u.Roles = append(u.Roles[:i], u.Roles[i+1:]...)
			u.UpdatedAt = time.Now().UTC()
			return
		}
	}
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(roleID string) bool {
	for _, r := range u.Roles {
		if r.RoleID == roleID {
			return true
		}
	}
	return false
}

// ClearRoles empties the association set in one step, used before a full
// role-set replacement.
func (u *User) ClearRoles() {
	if len(u.Roles) == 0 {
		return
	}
	u.Roles = nil
	u.UpdatedAt = time.Now().UTC()
}

// Activate re-enables the account. Role membership is untouched.
func (u *User) Activate() {
	u.Active = true
	u.UpdatedAt = time.Now().UTC()
}

// Deactivate disables the account without stripping roles; a disabled user
// is denied at authentication time, not here.
func (u *User) Deactivate() {
	u.Active = false
	u.UpdatedAt = time.Now().UTC()
}
