package ports

import "context"

// LoginThrottle limits failed login attempts per account identifier.
type LoginThrottle interface {
	// Blocked reports whether the identifier has exhausted its attempts.
	Blocked(ctx context.Context, identifier string) (bool, error)
	// RecordFailure counts one failed attempt.
	RecordFailure(ctx context.Context, identifier string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, identifier string) error
}
