package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		hashed, err := hasher.Hash("p")
		require.NoError(t, err)
		assert.NotEqual(t, "p", hashed)
		assert.True(t, hasher.Verify("p", hashed))
		assert.False(t, hasher.Verify("q", hashed))
	})

	t.Run("fresh salt per call", func(t *testing.T) {
		t.Parallel()
		first, err := hasher.Hash("secret")
		require.NoError(t, err)
		second, err := hasher.Hash("secret")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
		assert.True(t, hasher.Verify("secret", first))
		assert.True(t, hasher.Verify("secret", second))
	})

	t.Run("empty password", func(t *testing.T) {
		t.Parallel()
		_, err := hasher.Hash("")
		assert.ErrorIs(t, err, ErrEmptyPassword)
	})

	t.Run("exactly 72 bytes", func(t *testing.T) {
		t.Parallel()
		hashed, err := hasher.Hash(strings.Repeat("a", 72))
		require.NoError(t, err)
		assert.True(t, hasher.Verify(strings.Repeat("a", 72), hashed))
	})

	t.Run("too long for bcrypt", func(t *testing.T) {
		t.Parallel()
		_, err := hasher.Hash(strings.Repeat("a", 73))
		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})

	t.Run("malformed hash is a mismatch", func(t *testing.T) {
		t.Parallel()
		assert.False(t, hasher.Verify("p", "not-a-bcrypt-hash"))
		assert.False(t, hasher.Verify("p", ""))
	})
}

func TestNewBcryptHasherCost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}
