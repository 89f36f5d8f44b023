// Package token implements the bearer-token service on HS256 JWTs.
//
// The signing secret is loaded once at construction and never mutated, so
// every method is safe for concurrent use without locking.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLen is the minimum accepted secret size in bytes. A shorter
// secret is a configuration error, rejected at startup rather than per call.
const MinSecretLen = 32

var ErrSecretTooShort = fmt.Errorf("token: signing secret must be at least %d bytes", MinSecretLen)
var errNoSubject = errors.New("token: missing subject claim")

// Service issues and verifies HS256-signed tokens whose payload carries the
// user id as subject plus issued-at and expiration timestamps.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// New builds a Service. The secret length is validated here so that a
// misconfigured deployment fails to start instead of serving weak tokens.
func New(secret string, ttl time.Duration) (*Service, error) {
	if len(secret) < MinSecretLen {
		return nil, ErrSecretTooShort
	}
	if ttl < 0 {
		ttl = 0
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

// Generate mints a token for userID issued at issuedAt, expiring at
// issuedAt plus the configured TTL.
func (s *Service) Generate(userID string, issuedAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate verifies signature, structure and expiry. Every failure mode
// collapses to false; callers treat the request as anonymous, not as an
// error to surface.
func (s *Service) Validate(tokenString string) bool {
	parsed, err := s.parse(tokenString)
	return err == nil && parsed.Valid
}

// ExtractUserID returns the subject claim. Behavior on a token that did not
// pass Validate is undefined and must not feed security decisions.
func (s *Service) ExtractUserID(tokenString string) (string, error) {
	parsed, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", errNoSubject
	}
	return sub, nil
}

func (s *Service) parse(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
}
