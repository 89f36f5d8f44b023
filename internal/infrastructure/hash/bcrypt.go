// Package hash provides the bcrypt-backed password hashing capability.
package hash

import "golang.org/x/crypto/bcrypt"

// BcryptHasher implements domain.PasswordHasher with bcrypt at the default
// cost. Comparison is constant-time by construction.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(raw string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h *BcryptHasher) Matches(raw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
