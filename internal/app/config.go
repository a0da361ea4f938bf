package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"authboot/internal/domain"
)

// EnvPrefix is prepended to every environment variable Config reads.
const EnvPrefix = "AUTHBOOT_"

// Config holds runtime wiring options for building the app.
type Config struct {
	BaseURL  string        `env:"BASE_URL" envDefault:"http://localhost:8000/api/v1"`
	Email    string        `env:"EMAIL" envDefault:"superuser@example.com"`
	Password string        `env:"PASSWORD" envDefault:"strong_password"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"5s"` // per request; 0 disables
	LogLevel slog.Level    `env:"LOG_LEVEL" envDefault:"warn"`
}

// LoadConfig reads AUTHBOOT_* variables. Values from the optional dotenv
// files are applied first and never override the real environment.
func LoadConfig(dotenv ...string) (Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, path := range dotenv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the fields a run cannot do without.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base url %q: want an absolute http(s) URL", c.BaseURL)
	}
	if c.Email == "" {
		return errors.New("email required")
	}
	if c.Password == "" {
		return errors.New("password required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout %s must not be negative", c.Timeout)
	}
	return nil
}

// Credentials returns the account the workflow acts on.
func (c Config) Credentials() domain.Credentials {
	return domain.Credentials{Email: c.Email, Password: c.Password}
}
