package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"authboot/internal/authapi"
	"authboot/internal/domain"
)

// ErrRegistrationAborted is returned by Run when registration failed in a
// way that rules out logging in.
var ErrRegistrationAborted = errors.New("registration failed; login not attempted")

// Service drives the auth API through registration and login.
type Service struct {
	client domain.AuthClient
	out    io.Writer
	log    *slog.Logger
}

// New returns a workflow service that reports progress to out.
func New(client domain.AuthClient, out io.Writer, logger *slog.Logger) *Service {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{client: client, out: out, log: logger}
}

// Register attempts signup. A nil error means the workflow may proceed to
// login, either because the account was created or because it already exists.
func (s *Service) Register(ctx context.Context, creds domain.Credentials) (domain.RegistrationOutcome, error) {
	s.printf("Registering user: %s\n", creds.Email)

	body, err := s.client.Signup(ctx, creds)
	if err == nil {
		s.printf("User registered successfully: %s\n", body)
		s.log.Debug("registration", "outcome", domain.RegistrationCreated)
		return domain.RegistrationOutcome{Kind: domain.RegistrationCreated, Body: string(body)}, nil
	}

	if authapi.IsAlreadyRegistered(err) {
		s.printf("User %s already registered. Proceeding to login.\n", creds.Email)
		s.log.Debug("registration", "outcome", domain.RegistrationAlreadyExists)
		return domain.RegistrationOutcome{Kind: domain.RegistrationAlreadyExists, StatusCode: statusOf(err)}, nil
	}

	var se *authapi.StatusError
	if errors.As(err, &se) {
		s.printf("Failed to register user: %d - %s\n", se.StatusCode, se.Body)
		s.log.Debug("registration", "outcome", domain.RegistrationFailed, "status", se.StatusCode)
		return domain.RegistrationOutcome{
			Kind:       domain.RegistrationFailed,
			StatusCode: se.StatusCode,
			Body:       se.Body,
			Message:    err.Error(),
		}, err
	}

	s.printf("An error occurred while registering user: %v\n", cause(err))
	s.log.Debug("registration", "outcome", domain.RegistrationNetworkError, "error", err)
	return domain.RegistrationOutcome{Kind: domain.RegistrationNetworkError, Message: cause(err).Error()}, err
}

// Login exchanges the credentials for an access token. The returned error is
// non-nil exactly when the result is not LoginSuccess.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	s.printf("Logging in user: %s\n", creds.Email)

	tok, err := s.client.Login(ctx, creds.Username(), creds.Password)
	if err == nil {
		s.printf("Login successful. Access Token: %s\n", tok)
		return domain.LoginResult{Kind: domain.LoginSuccess, AccessToken: tok}, nil
	}

	var se *authapi.StatusError
	if errors.As(err, &se) {
		s.printf("Failed to login: %d - %s\n", se.StatusCode, se.Body)
		s.log.Debug("login", "outcome", domain.LoginFailed, "status", se.StatusCode, "error", err)
		return domain.LoginResult{
			Kind:       domain.LoginFailed,
			StatusCode: se.StatusCode,
			Body:       se.Body,
			Message:    err.Error(),
		}, err
	}

	s.printf("An error occurred while logging in: %v\n", cause(err))
	s.log.Debug("login", "outcome", domain.LoginNetworkError, "error", err)
	return domain.LoginResult{Kind: domain.LoginNetworkError, Message: cause(err).Error()}, err
}

// Run registers and, unless registration aborted, logs in. It returns the
// access token on success.
func (s *Service) Run(ctx context.Context, creds domain.Credentials) (string, error) {
	if _, err := s.Register(ctx, creds); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRegistrationAborted, err)
	}
	res, err := s.Login(ctx, creds)
	if err != nil {
		return "", err
	}
	return res.AccessToken, nil
}

func (s *Service) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// cause unwraps a NetworkError to the transport error for display.
func cause(err error) error {
	var ne *authapi.NetworkError
	if errors.As(err, &ne) && ne.Err != nil {
		return ne.Err
	}
	return err
}

func statusOf(err error) int {
	var se *authapi.StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

var _ domain.BootstrapService = (*Service)(nil)
