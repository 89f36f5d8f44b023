package domain

import "strings"

const (
	// AuthorityPrefix is prepended to every uppercased role name.
	AuthorityPrefix = "ROLE_"
	// DefaultAuthority is granted when an authenticated user holds no roles,
	// so every principal has at least baseline access.
	DefaultAuthority = "ROLE_USER"
)

// Principal is the request-scoped representation of the caller. It is built
// fresh on every request from durable state and never cached or persisted.
type Principal struct {
	UserID      string   `json:"user_id"`
	Username    string   `json:"username"`
	Disabled    bool     `json:"disabled"`
	PersonID    string   `json:"person_id,omitempty"`
	Roles       []string `json:"roles"`
	Authorities []string `json:"authorities"`
}

// NewPrincipal derives a Principal from a resolved user. personID may be
// empty when no person record links back to the account.
func NewPrincipal(user *User, personID string) *Principal {
	p := &Principal{
		UserID:   user.ID,
		Username: user.Username,
		Disabled: !user.Active,
		PersonID: personID,
	}
	for _, r := range user.ResolvedRoles {
		p.Roles = append(p.Roles, r.Name)
		p.Authorities = append(p.Authorities, AuthorityPrefix+strings.ToUpper(r.Name))
	}
	if len(p.Authorities) == 0 {
		p.Authorities = []string{DefaultAuthority}
	}
	return p
}

// HasAuthority reports whether the principal carries the given authority.
// A disabled principal holds no effective authorities.
func (p *Principal) HasAuthority(authority string) bool {
	if p == nil || p.Disabled {
		return false
	}
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}
