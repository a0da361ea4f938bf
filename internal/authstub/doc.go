// Package authstub implements an in-memory stand-in for the authentication
// API used by authboot during development and tests.
//
// HTTP API (mounted under /api/v1)
//
//	POST /auth/signup  {"email": ..., "password": ...}
//	    Create an account. 200 with the user object, 400 with
//	    {"detail":"Email already registered"} on a duplicate email, 422 when
//	    the email or password is missing.
//
//	POST /auth/login   username=...&password=... (form-encoded)
//	    200 with {"access_token": ..., "token_type": "bearer"}, 400 with
//	    {"detail":"Incorrect email or password"} otherwise.
//
//	GET /auth/me       Authorization: Bearer <token>
//	    Return the user the token was issued to, 401 when the token is
//	    missing, expired or forged.
//
// All state is held in memory and lost on process exit. Passwords are stored
// as bcrypt hashes and access tokens are HS256 JWTs.
package authstub
