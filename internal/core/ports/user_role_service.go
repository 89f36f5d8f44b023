package ports

import (
	"context"

	"github.com/hrsuite/personnel-system/internal/core/domain"
)

// UserRoleService mutates the user-role aggregate and persists it.
type UserRoleService interface {
	// AssignRoles resolves each role name and assigns it. Unknown names are
	// logged and skipped; one bad name does not fail the valid ones.
	AssignRoles(ctx context.Context, userID string, roleNames []string) (*domain.User, error)
	// ReplaceRoles clears the association set, then assigns the given names.
	ReplaceRoles(ctx context.Context, userID string, roleNames []string) (*domain.User, error)
	RemoveRole(ctx context.Context, userID, roleID string) (*domain.User, error)
}
