package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"authboot/internal/app"
)

var (
	baseURL   string
	email     string
	password  string
	timeout   time.Duration
	logLevel  string
	tokenOnly bool

	appCtx *app.Wire
)

// errNoToken makes the process exit non-zero; the failure has already been
// reported on the output streams.
var errNoToken = errors.New("failed to obtain access token")

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "authboot",
		Short:         "Register a user with the auth API and print a login token",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return reportErr(cmd, err)
			}
			if err := applyFlags(cmd, &cfg); err != nil {
				return reportErr(cmd, err)
			}
			if err := cfg.Validate(); err != nil {
				return reportErr(cmd, err)
			}

			progress := cmd.OutOrStdout()
			if tokenOnly {
				progress = cmd.ErrOrStderr()
			}
			appCtx = app.NewWire(cfg, progress, cmd.ErrOrStderr())
			appCtx.Log.Debug("config loaded", "base_url", cfg.BaseURL, "email", cfg.Email, "timeout", cfg.Timeout)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(cmd)
		},
	}

	// Reset so repeated constructions (tests) start from flag defaults.
	baseURL, email, password, logLevel = "", "", "", ""
	timeout, tokenOnly = 0, false

	pf := root.PersistentFlags()
	pf.StringVar(&baseURL, "base-url", "", "auth API base URL (default http://localhost:8000/api/v1)")
	pf.StringVar(&email, "email", "", "account email, also used as the login username")
	pf.StringVar(&password, "password", "", "account password")
	pf.DurationVar(&timeout, "timeout", 0, "per-request timeout, 0 disables (default 5s)")
	pf.StringVar(&logLevel, "log-level", "", "diagnostic log level: debug, info, warn, error")
	pf.BoolVar(&tokenOnly, "token-only", false, "print only the token on stdout")

	root.AddCommand(bootstrapCmd(), signupCmd(), loginCmd())
	return root
}

// applyFlags overrides env-derived config with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *app.Config) error {
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = baseURL
	}
	if flags.Changed("email") {
		cfg.Email = email
	}
	if flags.Changed("password") {
		cfg.Password = password
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if flags.Changed("log-level") {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
		cfg.LogLevel = lvl
	}
	return nil
}

func reportErr(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return err
}

// finalNotice writes the closing line of a workflow run.
func finalNotice(w io.Writer, token string) {
	if token == "" {
		fmt.Fprintln(w, "\n--- Failed to obtain access token ---")
		return
	}
	fmt.Fprintf(w, "\n--- Use this token as AUTH_TOKEN: %s ---\n", token)
}
