package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hrsuite/personnel-system/internal/core/domain"
	"github.com/hrsuite/personnel-system/internal/core/ports"
)

// Permissions implements ports.PermissionEvaluator. Privileged roles bypass
// ownership entirely; everyone else is restricted to resources transitively
// linked to their own person record. Unknown resource kinds deny.
type Permissions struct {
	persons ports.PersonDirectory
	read    map[string]struct{}
	write   map[string]struct{}
	log     zerolog.Logger
}

// NewPermissions builds the evaluator from configured role lists. Role names
// are accepted with or without the ROLE_ prefix. Every write role is also a
// read role, so writers can always read.
func NewPermissions(persons ports.PersonDirectory, readRoles, writeRoles []string, log zerolog.Logger) *Permissions {
	p := &Permissions{
		persons: persons,
		read:    make(map[string]struct{}),
		write:   make(map[string]struct{}),
		log:     log,
	}
	for _, r := range writeRoles {
		a := asAuthority(r)
		p.write[a] = struct{}{}
		p.read[a] = struct{}{}
	}
	for _, r := range readRoles {
		p.read[asAuthority(r)] = struct{}{}
	}
	return p
}

func asAuthority(role string) string {
	role = strings.ToUpper(strings.TrimSpace(role))
	if !strings.HasPrefix(role, domain.AuthorityPrefix) {
		role = domain.AuthorityPrefix + role
	}
	return role
}

// CanRead reports whether the principal holds a privileged read authority.
func (p *Permissions) CanRead(pr *domain.Principal) bool {
	return p.holdsAny(pr, p.read)
}

// CanWrite reports whether the principal holds a privileged write authority.
func (p *Permissions) CanWrite(pr *domain.Principal) bool {
	return p.holdsAny(pr, p.write)
}

func (p *Permissions) holdsAny(pr *domain.Principal, set map[string]struct{}) bool {
	if pr == nil || pr.Disabled {
		return false
	}
	for _, a := range pr.Authorities {
		if _, ok := set[a]; ok {
			return true
		}
	}
	return false
}

// IsOwner reports whether the resource traces back to the principal's own
// identity. Lookup failures resolve to deny and are logged, never returned.
func (p *Permissions) IsOwner(ctx context.Context, pr *domain.Principal, kind domain.ResourceKind, resourceID string) bool {
	if pr == nil || pr.Disabled || resourceID == "" {
		return false
	}

	switch kind {
	case domain.ResourceUser:
		return pr.UserID == resourceID
	case domain.ResourcePerson:
		return pr.PersonID != "" && pr.PersonID == resourceID
	case domain.ResourceEmployee:
		return p.matchesPerson(ctx, pr, resourceID, p.persons.PersonIDForEmployee)
	case domain.ResourceClient:
		return p.matchesPerson(ctx, pr, resourceID, p.persons.PersonIDForClient)
	}
	return false
}

// CanAccessResource grants access to privileged readers and to owners.
func (p *Permissions) CanAccessResource(ctx context.Context, pr *domain.Principal, kind domain.ResourceKind, resourceID string) bool {
	return p.CanRead(pr) || p.IsOwner(ctx, pr, kind, resourceID)
}

func (p *Permissions) matchesPerson(
	ctx context.Context,
	pr *domain.Principal,
	resourceID string,
	lookup func(context.Context, string) (string, error),
) bool {
	if pr.PersonID == "" {
		return false
	}
	personID, err := lookup(ctx, resourceID)
	if err != nil {
		p.log.Error().Err(err).Str("resource_id", resourceID).Msg("ownership lookup failed, denying")
		return false
	}
	return personID != "" && personID == pr.PersonID
}
