package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api/v1", cfg.BaseURL)
	assert.Equal(t, "superuser@example.com", cfg.Email)
	assert.Equal(t, "strong_password", cfg.Password)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("AUTHBOOT_BASE_URL", "https://auth.example.test/api/v1")
	t.Setenv("AUTHBOOT_EMAIL", "ops@example.test")
	t.Setenv("AUTHBOOT_TIMEOUT", "250ms")
	t.Setenv("AUTHBOOT_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "https://auth.example.test/api/v1", cfg.BaseURL)
	assert.Equal(t, "ops@example.test", cfg.Email)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadConfig_DotenvDoesNotOverrideEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("AUTHBOOT_EMAIL=file@example.test\nAUTHBOOT_PASSWORD=from-file\n"), 0o600))
	t.Setenv("AUTHBOOT_EMAIL", "env@example.test")
	// Registered so the value godotenv sets is cleared after the test.
	t.Setenv("AUTHBOOT_PASSWORD", "")
	require.NoError(t, os.Unsetenv("AUTHBOOT_PASSWORD"))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env@example.test", cfg.Email)
	assert.Equal(t, "from-file", cfg.Password)
}

func TestConfig_Validate(t *testing.T) {
	good := Config{BaseURL: "http://localhost:8000/api/v1", Email: "a@b.c", Password: "pw"}
	require.NoError(t, good.Validate())

	tests := map[string]func(*Config){
		"relative url":   func(c *Config) { c.BaseURL = "/api/v1" },
		"ftp url":        func(c *Config) { c.BaseURL = "ftp://host/api" },
		"empty email":    func(c *Config) { c.Email = "" },
		"empty password": func(c *Config) { c.Password = "" },
		"negative":       func(c *Config) { c.Timeout = -time.Second },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := good
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestConfig_Credentials(t *testing.T) {
	c := Config{Email: "a@b.c", Password: "pw"}
	creds := c.Credentials()
	assert.Equal(t, "a@b.c", creds.Username())
	assert.Equal(t, "pw", creds.Password)
}
