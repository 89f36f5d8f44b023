package ports

import (
	"context"

	"github.com/hrsuite/personnel-system/internal/core/domain"
)

type AuthService interface {
	// Login verifies credentials and mints a bearer token. Unknown user and
	// wrong password collapse into the same ErrInvalidCredentials outcome;
	// an inactive account is reported distinctly as ErrAccountInactive.
	Login(ctx context.Context, usernameOrEmail, password string) (string, *domain.User, error)
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
}
