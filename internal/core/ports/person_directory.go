package ports

import (
	"context"

	"github.com/hrsuite/personnel-system/internal/core/domain"
)

// PersonDirectory resolves the person linkage used by ownership checks.
// The identity core only reads person records; their lifecycle belongs to
// the people-management subsystem. Absence is a normal outcome reported as a
// nil person or empty id, not an error — errors mean the lookup itself
// failed and callers must deny.
type PersonDirectory interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Person, error)
	FindByID(ctx context.Context, id string) (*domain.Person, error)
	// PersonIDForEmployee returns the person id an employee record points at.
	PersonIDForEmployee(ctx context.Context, employeeID string) (string, error)
	// PersonIDForClient returns the person id a client record points at.
	PersonIDForClient(ctx context.Context, clientID string) (string, error)
}
