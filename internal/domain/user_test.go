package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userName  string
		email     string
		hash      string
		wantField string
	}{
		{name: "valid", userName: "A", email: "a@x.com", hash: "$2a$10$hash"},
		{name: "missing name", userName: "", email: "a@x.com", hash: "$2a$10$hash", wantField: "name"},
		{name: "blank name", userName: "   ", email: "a@x.com", hash: "$2a$10$hash", wantField: "name"},
		{name: "missing email", userName: "A", email: "", hash: "$2a$10$hash", wantField: "email"},
		{name: "missing hash", userName: "A", email: "a@x.com", hash: "", wantField: "password"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			user, err := NewUser(tt.userName, tt.email, tt.hash)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Empty(t, user.ID, "ID is assigned by the store")
				return
			}
			require.Error(t, err)
			assert.Nil(t, user)
			assert.True(t, errors.Is(err, ErrValidation))
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	t.Parallel()

	user := &User{ID: "u-1", Name: "A", Email: "a@x.com", PasswordHash: "$2a$10$secret"}
	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "PasswordHash")
}

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	err := NewValidationError("items", "must contain at least one item", ErrEmptyItems)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, errors.Is(err, ErrEmptyItems))
	assert.Equal(t, "invalid items: must contain at least one item", err.Error())

	plain := NewValidationError("address", "bad", nil)
	assert.True(t, errors.Is(plain, ErrValidation))
}
