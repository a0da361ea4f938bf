package domain

import (
	interfaces "authboot/internal/domain/interfaces"
	types "authboot/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Credentials         = types.Credentials
	RegistrationKind    = types.RegistrationKind
	RegistrationOutcome = types.RegistrationOutcome
	LoginKind           = types.LoginKind
	LoginResult         = types.LoginResult
)

// Outcome kinds re-exported for callers that only import domain.
const (
	RegistrationCreated       = types.RegistrationCreated
	RegistrationAlreadyExists = types.RegistrationAlreadyExists
	RegistrationFailed        = types.RegistrationFailed
	RegistrationNetworkError  = types.RegistrationNetworkError

	LoginSuccess      = types.LoginSuccess
	LoginFailed       = types.LoginFailed
	LoginNetworkError = types.LoginNetworkError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AuthClient       = interfaces.AuthClient
	BootstrapService = interfaces.BootstrapService
)
