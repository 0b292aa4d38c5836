package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid, the signature doesn't
	// match, the algorithm is unexpected or the identity claims are missing
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrMalformedAuthHeader indicates the Authorization header is not of the form "Bearer <token>"
	ErrMalformedAuthHeader = errors.New("authorization header must use the Bearer scheme")

	// ErrEmptyPassword indicates an attempt to hash an empty password
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrPasswordTooLong indicates a password longer than bcrypt's 72-byte input limit
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

	// ErrWeakSecret indicates the signing secret is shorter than MinSecretLength
	ErrWeakSecret = errors.New("jwt secret must be at least 32 characters")
)
