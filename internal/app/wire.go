package app

import (
	"io"
	"log/slog"
	"net/http"

	"authboot/internal/authapi"
	"authboot/internal/domain"
	"authboot/internal/services/bootstrap"
)

// Wire bundles the services and clients for the CLI.
type Wire struct {
	Config    Config
	Log       *slog.Logger
	HTTP      *http.Client
	Auth      domain.AuthClient
	Bootstrap domain.BootstrapService
}

// NewWire constructs the dependency graph from cfg. Progress lines go to out
// and diagnostics to logw.
func NewWire(cfg Config, out, logw io.Writer) *Wire {
	logger := NewLogger(logw, cfg.LogLevel)

	// One client serves both requests; Timeout bounds each of them.
	httpClient := &http.Client{Timeout: cfg.Timeout}

	ac := authapi.NewHTTP(cfg.BaseURL, httpClient, logger)
	svc := bootstrap.New(ac, out, logger)

	return &Wire{
		Config:    cfg,
		Log:       logger,
		HTTP:      httpClient,
		Auth:      ac,
		Bootstrap: svc,
	}
}

// NewLogger returns a text slog logger writing to w at level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
