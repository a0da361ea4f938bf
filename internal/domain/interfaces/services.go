package interfaces

import (
	"context"

	domaintypes "authboot/internal/domain/types"
)

// BootstrapService runs the register-then-login workflow.
type BootstrapService interface {
	Register(ctx context.Context, creds domaintypes.Credentials) (domaintypes.RegistrationOutcome, error)
	Login(ctx context.Context, creds domaintypes.Credentials) (domaintypes.LoginResult, error)
	Run(ctx context.Context, creds domaintypes.Credentials) (string, error)
}
