package interfaces

import (
	"context"

	domaintypes "authboot/internal/domain/types"
)

// AuthClient talks to the authentication API's signup and login endpoints.
type AuthClient interface {
	// Signup creates an account and returns the raw user object from the API.
	Signup(ctx context.Context, creds domaintypes.Credentials) ([]byte, error)
	// Login exchanges username and password for an access token.
	Login(ctx context.Context, username, password string) (string, error)
}
