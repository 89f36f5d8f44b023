package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hrsuite/personnel-system/internal/core/domain"
	"github.com/hrsuite/personnel-system/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	directory ports.UserDirectory
	users     ports.UserStore
	hasher    domain.PasswordHasher
	tokens    ports.TokenService
	throttle  ports.LoginThrottle
	log       zerolog.Logger
}

func NewAuthService(
	directory ports.UserDirectory,
	users ports.UserStore,
	hasher domain.PasswordHasher,
	tokens ports.TokenService,
	throttle ports.LoginThrottle,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		directory: directory,
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		throttle:  throttle,
		log:       log,
	}
}

// Login verifies credentials and mints a bearer token. An unknown user and a
// wrong password produce the same ErrInvalidCredentials so callers cannot
// tell which half of the check failed; an inactive account with correct
// credentials is reported distinctly.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (string, *domain.User, error) {
	if usernameOrEmail == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	key := strings.ToLower(usernameOrEmail)
	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle unavailable, proceeding")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.directory.FindForAuthentication(ctx, usernameOrEmail)
	if err == domain.ErrUserNotFound {
		s.recordFailure(ctx, key)
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if !s.hasher.Matches(password, user.PasswordHash) {
		s.recordFailure(ctx, key)
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.Active {
		return "", nil, domain.ErrAccountInactive
	}

	token, err := s.tokens.Generate(user.ID, time.Now().UTC())
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, key); err != nil {
			s.log.Warn().Err(err).Msg("failed to reset login throttle")
		}
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("login succeeded")
	return token, user, nil
}

// Register creates a new active account through the aggregate constructor.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	user, err := domain.NewUser(username, email, password, s.hasher)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AuthService) recordFailure(ctx context.Context, key string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
}
