package domain

// ResourceKind enumerates the resource types subject to ownership checks.
// The set is closed: anything that does not parse is denied outright rather
// than falling through to a default rule.
type ResourceKind string

const (
	ResourcePerson   ResourceKind = "PERSON"
	ResourceUser     ResourceKind = "USER"
	ResourceEmployee ResourceKind = "EMPLOYEE"
	ResourceClient   ResourceKind = "CLIENT"
)

// ParseResourceKind maps a wire-level type string to a ResourceKind.
// ok is false for anything outside the closed set.
func ParseResourceKind(s string) (ResourceKind, bool) {
	switch ResourceKind(s) {
	case ResourcePerson, ResourceUser, ResourceEmployee, ResourceClient:
		return ResourceKind(s), true
	}
	return "", false
}
