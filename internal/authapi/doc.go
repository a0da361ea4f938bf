// Package authapi provides an HTTP implementation of the domain.AuthClient
// interface.
//
// Supported operations:
//   - Signup: POST {base}/auth/signup with a JSON {email, password} body.
//   - Login: POST {base}/auth/login with a form-encoded {username, password}
//     body, returning the access_token field of the JSON response.
//
// All requests accept a context for cancellation and deadlines. Non-2xx
// statuses are returned as *StatusError carrying the status code and body;
// failures before a response arrives are returned as *NetworkError.
package authapi
