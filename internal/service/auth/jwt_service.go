package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/food-ordering-api/internal/config"
	"github.com/phrazzld/food-ordering-api/internal/platform/logger"
)

// hmacTokenService is an implementation of TokenService using HMAC-SHA256 signed JWTs.
type hmacTokenService struct {
	signingKey []byte
	timeFunc   func() time.Time // Injectable for testing
}

// jwtCustomClaims defines the structure of JWT claims we use
type jwtCustomClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Ensure hmacTokenService implements TokenService interface
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService signing with cfg.JWTSecret.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	return NewTokenServiceWithClock(cfg.JWTSecret, time.Now)
}

// NewTokenServiceWithClock creates a TokenService that reads the current time
// from now. The secret is copied, so later changes to the caller's string or
// configuration have no effect.
func NewTokenServiceWithClock(secret string, now func() time.Time) (TokenService, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	if now == nil {
		now = time.Now
	}
	return &hmacTokenService{
		signingKey: []byte(secret),
		timeFunc:   now,
	}, nil
}

// Issue creates a signed JWT with the identity claims.
func (s *hmacTokenService) Issue(ctx context.Context, identity Identity) (string, error) {
	log := logger.FromContext(ctx)

	if identity.UserID == "" || identity.Email == "" {
		return "", errors.New("cannot issue token without user id and email")
	}

	now := s.timeFunc()
	claims := jwtCustomClaims{
		UserID: identity.UserID,
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
			ID:        uuid.New().String(), // Unique token ID
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign session token",
			"error", err,
			"user_id", identity.UserID,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}

	return signedToken, nil
}

// Verify validates a JWT and returns its claims. No leeway is applied to exp.
func (s *hmacTokenService) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.timeFunc),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwtCustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token verification failed: token expired", "error", err)
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenMalformed):
			log.Debug("token verification failed: malformed token", "error", err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			log.Debug("token verification failed: invalid signature", "error", err)
		default:
			log.Debug("token verification failed",
				"error", err,
				"error_type", fmt.Sprintf("%T", err))
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid {
		log.Debug("token verification failed: invalid claims")
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" || claims.Email == "" {
		log.Debug("token verification failed: missing identity claims", "token_id", claims.ID)
		return nil, ErrInvalidToken
	}

	verified := &Claims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
		ID:        claims.ID,
	}
	if claims.IssuedAt != nil {
		verified.IssuedAt = claims.IssuedAt.Time
	}

	log.Debug("token verified",
		"user_id", claims.UserID,
		"token_id", claims.ID,
		"expiry", claims.ExpiresAt.Time)

	return verified, nil
}
