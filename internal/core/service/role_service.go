package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hrsuite/personnel-system/internal/api/metrics"
	"github.com/hrsuite/personnel-system/internal/core/domain"
	"github.com/hrsuite/personnel-system/internal/core/ports"
)

// RoleService mutates the user-role aggregate and persists it. Persistence
// is last-write-wins: concurrent mutations of the same user race and the
// later save overwrites the earlier one.
type RoleService struct {
	users ports.UserStore
	roles ports.RoleStore
	log   zerolog.Logger
}

func NewRoleService(users ports.UserStore, roles ports.RoleStore, log zerolog.Logger) *RoleService {
	return &RoleService{users: users, roles: roles, log: log}
}

// AssignRoles resolves each role name and assigns it to the user. Unknown
// names are logged and skipped — one bad name does not fail the valid ones.
func (s *RoleService) AssignRoles(ctx context.Context, userID string, roleNames []string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.assignByName(ctx, user, roleNames)

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("assign roles: %w", err)
	}
	return saved, nil
}

// ReplaceRoles swaps the whole association set for the given names.
func (s *RoleService) ReplaceRoles(ctx context.Context, userID string, roleNames []string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.ClearRoles()
	s.assignByName(ctx, user, roleNames)

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("replace roles: %w", err)
	}
	return saved, nil
}

// RemoveRole drops a single association; removing an absent role is a no-op.
func (s *RoleService) RemoveRole(ctx context.Context, userID, roleID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.RemoveRole(roleID)

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("remove role: %w", err)
	}
	return saved, nil
}

func (s *RoleService) assignByName(ctx context.Context, user *domain.User, roleNames []string) {
	for _, name := range roleNames {
		role, err := s.roles.FindByName(ctx, name)
		if err == domain.ErrRoleNotFound {
			metrics.RoleAssignmentsTotal.WithLabelValues("skipped_unknown").Inc()
			s.log.Warn().Str("user_id", user.ID).Str("role", name).Msg("unknown role skipped during assignment")
			continue
		}
		if err != nil {
			s.log.Error().Err(err).Str("role", name).Msg("role lookup failed, skipping")
			continue
		}
		if err := user.AssignRole(role.ID); err != nil {
			s.log.Warn().Err(err).Str("role", name).Msg("role assignment rejected")
			continue
		}
		metrics.RoleAssignmentsTotal.WithLabelValues("assigned").Inc()
	}
}
