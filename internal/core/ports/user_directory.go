package ports

import (
	"context"

	"github.com/hrsuite/personnel-system/internal/core/domain"
)

// UserDirectory loads users for authentication with their role associations
// fully resolved. A partially loaded role set is an invariant violation
// because authority derivation depends on completeness.
type UserDirectory interface {
	FindForAuthentication(ctx context.Context, usernameOrEmail string) (*domain.User, error)
	FindForAuthenticationByID(ctx context.Context, id string) (*domain.User, error)
}
