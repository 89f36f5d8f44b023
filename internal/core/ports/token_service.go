package ports

import "time"

// TokenService issues and verifies signed, time-bounded bearer tokens.
// Implementations must be safe for concurrent use; verification is a pure
// function over an immutable secret.
type TokenService interface {
	// Generate mints a token carrying userID as subject, issued at issuedAt
	// and expiring at issuedAt plus the configured TTL.
	Generate(userID string, issuedAt time.Time) (string, error)
	// Validate verifies signature and expiry. Any cryptographic, structural
	// or expiration failure yields false; it never returns an error.
	Validate(token string) bool
	// ExtractUserID returns the subject claim. Callers must Validate first;
	// the result for an invalid token carries no security meaning.
	ExtractUserID(token string) (string, error)
}
