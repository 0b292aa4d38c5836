package auth

import "strings"

// BearerToken extracts the token from an Authorization header value.
// An empty header yields ErrMissingToken; anything other than
// "Bearer <token>" (scheme matched case-insensitively) yields
// ErrMalformedAuthHeader.
func BearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", ErrMissingToken
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMalformedAuthHeader
	}
	return parts[1], nil
}
