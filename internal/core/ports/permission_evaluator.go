package ports

import (
	"context"

	"github.com/hrsuite/personnel-system/internal/core/domain"
)

// PermissionEvaluator decides access for a principal. Decisions are pure
// booleans; failures while resolving ownership resolve to deny, never to an
// error surfaced to the caller.
type PermissionEvaluator interface {
	CanRead(p *domain.Principal) bool
	CanWrite(p *domain.Principal) bool
	IsOwner(ctx context.Context, p *domain.Principal, kind domain.ResourceKind, resourceID string) bool
	CanAccessResource(ctx context.Context, p *domain.Principal, kind domain.ResourceKind, resourceID string) bool
}
