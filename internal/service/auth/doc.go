// Package auth holds the credential and session-token primitives: bcrypt
// password hashing, HS256 JWT issuance and verification, and parsing of
// "Bearer" Authorization headers.
package auth
