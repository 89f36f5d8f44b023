package ports

import (
	"context"

	"github.com/hrsuite/personnel-system/internal/core/domain"
)

// UserStore is the persistence port for the User aggregate.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsernameOrEmail matches either field case-insensitively.
	FindByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Save persists the aggregate including its full role association set.
	// Last write wins; no optimistic locking is performed.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
}
