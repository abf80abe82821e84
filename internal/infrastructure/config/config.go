package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	AuthMode string `env:"AUTH_MODE, default=cookie"`

	JWT      JWTConfig
	Admin    AdminConfig
	Database DatabaseConfig
}

type JWTConfig struct {
	Secret     string `env:"JWT_SECRET"`
	Algorithm  string `env:"JWT_ALGORITHM,     default=HS256"`
	TTLMinutes int    `env:"TOKEN_TTL_MINUTES, default=30"`
}

// AdminConfig holds the bootstrap credentials. When either field is
// empty the admin seed is skipped at startup.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=5432"`
	Username string `env:"DB_USERNAME, default=postgres"`
	Password string `env:"DB_PASSWORD, default=postgres"`
	Name     string `env:"DB_NAME,     default=recruiteriq"`
	SSLMode  string `env:"DB_SSLMODE,  default=disable"`
}

// DSN composes the pgx connection string from the individual parts.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.Username, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

// Load reads configuration from environment variables using go-envconfig
// and validates the settings that must be decided once at startup.
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
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	// The signing algorithm is pinned; the variable exists so a
	// misconfigured deployment fails loudly instead of signing with an
	// unexpected method.
	if c.JWT.Algorithm != "HS256" {
		return fmt.Errorf("config: unsupported JWT_ALGORITHM %q, only HS256 is supported", c.JWT.Algorithm)
	}
	if c.AuthMode != "cookie" && c.AuthMode != "bearer" {
		return fmt.Errorf("config: AUTH_MODE must be \"cookie\" or \"bearer\", got %q", c.AuthMode)
	}
	return nil
}
