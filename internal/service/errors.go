package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is to check for them; the API layer maps them to status codes.
var (
	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	// Both cases return this same error so callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
