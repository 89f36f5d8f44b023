package ports

import (
	"context"

	"github.com/hrsuite/personnel-system/internal/core/domain"
)

// RoleStore is the read-side persistence port for roles.
type RoleStore interface {
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
}
