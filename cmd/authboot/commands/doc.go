// Package commands defines the authboot CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - (root)     Register, then log in and print the access token
//   - bootstrap  Same as the root command
//   - signup     Registration step only
//   - login      Login step only
//
// # Configuration
//
// Defaults target http://localhost:8000/api/v1 as superuser@example.com.
// AUTHBOOT_* environment variables (and a .env file in the working
// directory) override the defaults; flags override both.
//
// # Implementation
//
// The root command loads configuration and builds the dependency graph
// (HTTP client, auth API client, workflow service) before any subcommand
// runs. Progress lines go to stdout and diagnostics to stderr; with
// --token-only, stdout carries just the token so it can be captured by a
// shell.
package commands
