package authapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AlreadyRegisteredMarker is the text the API puts in a 400 signup response
// when the email already has an account.
const AlreadyRegisteredMarker = "Email already registered"

// ErrMissingToken is wrapped by a StatusError when a successful login
// response carries no access_token.
var ErrMissingToken = errors.New("login response has no access_token")

// StatusError is returned when the API answers with an unexpected status, or
// with a 2xx body that cannot be used.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("auth %s: %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StatusError) Unwrap() error { return e.Err }

// NetworkError is returned when the request never produced a response:
// connection refused, DNS failure, timeout, or a truncated body.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("auth %s: %v", e.Op, e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// IsAlreadyRegistered reports whether err is the signup conflict the
// workflow tolerates: HTTP 400 with AlreadyRegisteredMarker in the body.
func IsAlreadyRegistered(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.StatusCode == http.StatusBadRequest && strings.Contains(se.Body, AlreadyRegisteredMarker)
}
