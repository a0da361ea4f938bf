package types

// RegistrationKind classifies how the signup request ended.
type RegistrationKind int

const (
	// RegistrationCreated means the API created the account.
	RegistrationCreated RegistrationKind = iota + 1
	// RegistrationAlreadyExists means the email was already registered.
	RegistrationAlreadyExists
	// RegistrationFailed means the API answered with any other error status.
	RegistrationFailed
	// RegistrationNetworkError means no HTTP response was received.
	RegistrationNetworkError
)

// String returns a short lower-case label for logs.
func (k RegistrationKind) String() string {
	switch k {
	case RegistrationCreated:
		return "created"
	case RegistrationAlreadyExists:
		return "already_exists"
	case RegistrationFailed:
		return "failed"
	case RegistrationNetworkError:
		return "network_error"
	default:
		return "unknown"
	}
}

// RegistrationOutcome is the result of the registration step.
//
// Body holds the created user object for RegistrationCreated and the raw error
// body for RegistrationFailed. StatusCode is zero when no response arrived.
type RegistrationOutcome struct {
	Kind       RegistrationKind
	StatusCode int
	Body       string
	Message    string
}

// Proceed reports whether the workflow may continue to login.
func (o RegistrationOutcome) Proceed() bool {
	return o.Kind == RegistrationCreated || o.Kind == RegistrationAlreadyExists
}

// LoginKind classifies how the login request ended.
type LoginKind int

const (
	// LoginSuccess means an access token was issued.
	LoginSuccess LoginKind = iota + 1
	// LoginFailed means the API rejected the login or returned no token.
	LoginFailed
	// LoginNetworkError means no HTTP response was received.
	LoginNetworkError
)

// String returns a short lower-case label for logs.
func (k LoginKind) String() string {
	switch k {
	case LoginSuccess:
		return "success"
	case LoginFailed:
		return "failed"
	case LoginNetworkError:
		return "network_error"
	default:
		return "unknown"
	}
}

// LoginResult is the result of the login step.
type LoginResult struct {
	Kind        LoginKind
	AccessToken string
	StatusCode  int
	Body        string
	Message     string
}

// OK reports whether a token was obtained.
func (r LoginResult) OK() bool { return r.Kind == LoginSuccess && r.AccessToken != "" }
