// Package bootstrap runs the register-then-login workflow.
//
// Registration tolerates the "Email already registered" conflict; any other
// failure aborts before login. Progress lines are written to the configured
// writer as each step finishes.
package bootstrap
