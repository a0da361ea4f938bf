package authstub

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime options for the stub server.
type Config struct {
	Addr       string        `env:"ADDR" envDefault:":8000"`
	JWTSecret  string        `env:"JWT_SECRET" envDefault:"authstub-dev-secret"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"30m"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
	LogLevel   slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads AUTHSTUB_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "AUTHSTUB_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return Config{}, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cfg.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must not be empty")
	}
	return cfg, nil
}
