package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/food-ordering-api/internal/domain"
	"github.com/phrazzld/food-ordering-api/internal/service/auth"
	"github.com/phrazzld/food-ordering-api/internal/store"
)

// SignupInput is the data needed to register an account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput is the data needed to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is returned by a successful signup or login.
// It never carries the password or its hash.
type AuthResult struct {
	UserID      string
	Email       string
	AccessToken string
}

// AuthService registers accounts and exchanges credentials for session tokens.
type AuthService interface {
	// Signup creates an account and returns a token for it.
	// Returns domain.ErrValidation for missing fields and store.ErrEmailExists
	// if the email is already registered.
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)

	// Login checks credentials and returns a fresh token.
	// Returns ErrInvalidCredentials for an unknown email or a wrong password.
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	gateway store.Gateway
	hasher  auth.PasswordHasher
	tokens  auth.TokenService
	logger  *slog.Logger
}

// Ensure authServiceImpl implements AuthService interface
var _ AuthService = (*authServiceImpl)(nil)

// NewAuthService creates a new AuthService. If logger is nil, the default logger is used.
func NewAuthService(
	gateway store.Gateway,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
	logger *slog.Logger,
) AuthService {
	if gateway == nil || hasher == nil || tokens == nil {
		panic("auth service dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &authServiceImpl{
		gateway: gateway,
		hasher:  hasher,
		tokens:  tokens,
		logger:  logger.With("component", "auth_service"),
	}
}

// Signup implements AuthService.Signup.
//
// The lookup is only a fast path: two concurrent signups may both pass it,
// and the unique email index then rejects the second insert with
// store.ErrEmailExists.
func (s *authServiceImpl) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	if err := requireFields(
		field{"name", in.Name, false},
		field{"email", in.Email, false},
		field{"password", in.Password, true},
	); err != nil {
		return nil, err
	}

	err := s.gateway.WithUsers(ctx, func(ctx context.Context, users store.UserCollection) error {
		_, err := users.FindByEmail(ctx, in.Email)
		switch {
		case err == nil:
			return store.ErrEmailExists
		case errors.Is(err, store.ErrUserNotFound):
			return nil
		default:
			return err
		}
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("signup rejected: email already registered")
			return nil, err
		}
		s.logger.Error("failed to look up user during signup", "error", err)
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	// Hash outside any lease so bcrypt does not hold a pooled connection.
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) || errors.Is(err, auth.ErrEmptyPassword) {
			return nil, domain.NewValidationError("password", err.Error(), err)
		}
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(in.Name, in.Email, hash)
	if err != nil {
		return nil, err
	}

	userID, err := store.Users(ctx, s.gateway,
		func(ctx context.Context, users store.UserCollection) (string, error) {
			return users.Insert(ctx, user)
		})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("signup rejected by unique email index")
			return nil, err
		}
		s.logger.Error("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(ctx, auth.Identity{UserID: userID, Email: user.Email})
	if err != nil {
		s.logger.Error("failed to issue token after signup", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("user signed up", "user_id", userID)

	return &AuthResult{UserID: userID, Email: user.Email, AccessToken: token}, nil
}

// Login implements AuthService.Login.
func (s *authServiceImpl) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if err := requireFields(
		field{"email", in.Email, false},
		field{"password", in.Password, true},
	); err != nil {
		return nil, err
	}

	user, err := store.Users(ctx, s.gateway,
		func(ctx context.Context, users store.UserCollection) (*domain.User, error) {
			return users.FindByEmail(ctx, in.Email)
		})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login failed: unknown email")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user during login", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Verify(in.Password, user.PasswordHash) {
		s.logger.Debug("login failed: password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, auth.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		s.logger.Error("failed to issue token after login", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Debug("user logged in", "user_id", user.ID)

	return &AuthResult{UserID: user.ID, Email: user.Email, AccessToken: token}, nil
}

type field struct {
	name  string
	value string
	// verbatim fields are only required to be non-empty; whitespace counts.
	verbatim bool
}

// requireFields returns a validation error naming the first blank field.
func requireFields(fields ...field) error {
	for _, f := range fields {
		value := f.value
		if !f.verbatim {
			value = strings.TrimSpace(value)
		}
		if value == "" {
			return domain.NewValidationError(f.name, "is required", domain.ErrEmptyField)
		}
	}
	return nil
}
