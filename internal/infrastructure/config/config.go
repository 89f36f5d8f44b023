package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// minSecretLen mirrors the token service requirement so a bad deployment is
// rejected before any component is built.
const minSecretLen = 32

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret  string `env:"JWT_SECRET"`
	TokenTTLMS int64  `env:"TOKEN_TTL_MS, default=86400000"`

	// Comma-separated role names. Write roles are always readable too.
	ReadRoles  []string `env:"READ_ROLES,  default=ADMIN"`
	WriteRoles []string `env:"WRITE_ROLES, default=ADMIN"`

	LoginMaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=5"`
	LoginAttemptTTL  time.Duration `env:"LOGIN_ATTEMPT_TTL,  default=15m"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=personnel_system"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig and
// validates the security-sensitive parts. A missing or undersized secret is
// fatal here, at startup, never at request time.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.JWTSecret) < minSecretLen {
		return fmt.Errorf("config: JWT_SECRET must be at least %d bytes", minSecretLen)
	}
	if c.TokenTTLMS <= 0 {
		return fmt.Errorf("config: TOKEN_TTL_MS must be positive")
	}
	if c.LoginMaxAttempts <= 0 {
		return fmt.Errorf("config: LOGIN_MAX_ATTEMPTS must be positive")
	}
	if c.LoginAttemptTTL <= 0 {
		return fmt.Errorf("config: LOGIN_ATTEMPT_TTL must be positive")
	}
	return nil
}

// TokenTTL converts the configured millisecond TTL into a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMS) * time.Millisecond
}
