// Package main runs the in-memory auth API used by authboot during
// development and tests. See package authstub for the HTTP API.
//
// Configuration comes from AUTHSTUB_* environment variables: ADDR (default
// :8000), JWT_SECRET, TOKEN_TTL (default 30m), BCRYPT_COST (default 10) and
// LOG_LEVEL (default info).
//
// This server is intended for local use only; accounts vanish on exit.
package main
