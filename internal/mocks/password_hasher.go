package mocks

import (
	"strings"

	"github.com/phrazzld/food-ordering-api/internal/service/auth"
)

// mockHashPrefix marks values produced by MockPasswordHasher.Hash.
const mockHashPrefix = "hashed:"

// MockPasswordHasher implements auth.PasswordHasher for testing.
// By default Hash prefixes the password and Verify checks the prefix form.
type MockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hashed string) bool

	// HashCallCount tracks how many times Hash was called
	HashCallCount int
	// VerifyCallCount tracks how many times Verify was called
	VerifyCallCount int
}

// Ensure MockPasswordHasher implements auth.PasswordHasher interface
var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// NewMockPasswordHasher creates a hasher with the default behaviour.
func NewMockPasswordHasher() *MockPasswordHasher {
	return &MockPasswordHasher{}
}

// Hash implements auth.PasswordHasher.Hash.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCallCount++
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	if password == "" {
		return "", auth.ErrEmptyPassword
	}
	return mockHashPrefix + password, nil
}

// Verify implements auth.PasswordHasher.Verify.
func (m *MockPasswordHasher) Verify(password, hashed string) bool {
	m.VerifyCallCount++
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hashed)
	}
	return strings.HasPrefix(hashed, mockHashPrefix) && strings.TrimPrefix(hashed, mockHashPrefix) == password
}
