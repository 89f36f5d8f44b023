package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hrsuite/personnel-system/internal/core/domain"
	"github.com/hrsuite/personnel-system/internal/core/ports"
)

// Directory implements ports.UserDirectory over the user and role stores.
// Every lookup resolves the complete role set before returning; callers never
// see a user with partially loaded associations.
type Directory struct {
	users ports.UserStore
	roles ports.RoleStore
	log   zerolog.Logger
}

func NewDirectory(users ports.UserStore, roles ports.RoleStore, log zerolog.Logger) *Directory {
	return &Directory{users: users, roles: roles, log: log}
}

// FindForAuthentication looks a user up by username or email,
// case-insensitively, with roles resolved.
func (d *Directory) FindForAuthentication(ctx context.Context, usernameOrEmail string) (*domain.User, error) {
	user, err := d.users.FindByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		return nil, err
	}
	if err := d.resolveRoles(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// FindForAuthenticationByID gives the same guarantee by id, used when
// re-authenticating a bearer token on every request.
func (d *Directory) FindForAuthenticationByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := d.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.resolveRoles(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// resolveRoles attaches the Role records behind the user's associations.
// A dangling association (role deleted out from under the user) is logged
// and skipped; an unavailable role store fails the whole lookup.
func (d *Directory) resolveRoles(ctx context.Context, user *domain.User) error {
	user.ResolvedRoles = user.ResolvedRoles[:0]
	for _, assoc := range user.Roles {
		role, err := d.roles.FindByID(ctx, assoc.RoleID)
		if err == domain.ErrRoleNotFound {
			d.log.Warn().Str("user_id", user.ID).Str("role_id", assoc.RoleID).Msg("dangling role association skipped")
			continue
		}
		if err != nil {
			return fmt.Errorf("resolve roles: %w", err)
		}
		user.ResolvedRoles = append(user.ResolvedRoles, *role)
	}
	return nil
}
