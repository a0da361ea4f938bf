package types

// Credentials identifies the account the workflow registers and logs in with.
// The email doubles as the login username.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Username returns the login username for the credentials.
func (c Credentials) Username() string { return c.Email }
