// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment (optionally seeded from a .env file),
// builds the logger, HTTP client, auth API client and workflow service, and
// exposes them via the Wire struct for commands to use.
package app
