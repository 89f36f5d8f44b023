package domain

import (
	"strings"
	"time"
)

// Role is a named grant that users reference through UserRole associations.
type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewRole constructs an active Role. Names are 2-50 characters.
func NewRole(name, description string) (*Role, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 50 {
		return nil, ErrInvalidRoleName
	}

	now := time.Now().UTC()
	return &Role{
		Name:        name,
		Description: description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
