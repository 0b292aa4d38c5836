package mocks

import (
	"context"

	"github.com/phrazzld/food-ordering-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing.
type MockTokenService struct {
	// Function fields for custom behaviors
	IssueFunc  func(ctx context.Context, identity auth.Identity) (string, error)
	VerifyFunc func(ctx context.Context, token string) (*auth.Claims, error)

	// Fixed fields for simple cases
	Token     string       // Default token to return from Issue
	IssueErr  error        // Default error for Issue
	Claims    *auth.Claims // Default claims to return from Verify
	VerifyErr error        // Default error for Verify

	// Recorded calls
	Issued   []auth.Identity
	Verified []string
}

// Ensure MockTokenService implements auth.TokenService interface
var _ auth.TokenService = (*MockTokenService)(nil)

// NewMockTokenService creates a mock that issues "mock-token" and verifies
// every token as belonging to identity.
func NewMockTokenService(identity auth.Identity) *MockTokenService {
	return &MockTokenService{
		Token: "mock-token",
		Claims: &auth.Claims{
			UserID:  identity.UserID,
			Email:   identity.Email,
			Subject: identity.UserID,
		},
	}
}

// Issue implements auth.TokenService.Issue.
func (m *MockTokenService) Issue(ctx context.Context, identity auth.Identity) (string, error) {
	m.Issued = append(m.Issued, identity)
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, identity)
	}
	return m.Token, m.IssueErr
}

// Verify implements auth.TokenService.Verify.
func (m *MockTokenService) Verify(ctx context.Context, token string) (*auth.Claims, error) {
	m.Verified = append(m.Verified, token)
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, token)
	}
	if m.VerifyErr != nil {
		return nil, m.VerifyErr
	}
	return m.Claims, nil
}
