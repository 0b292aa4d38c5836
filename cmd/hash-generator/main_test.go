package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/food-ordering-api/internal/service/auth"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	cost := "4"

	err := run([]string{"-cost", cost, "p", "тест123"}, &out, io.Discard)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	assert.True(t, hasher.Verify("p", lines[0]))
	assert.True(t, hasher.Verify("тест123", lines[1]))
	assert.False(t, hasher.Verify("p", lines[1]))
}

func TestRun_Errors(t *testing.T) {
	assert.Error(t, run(nil, io.Discard, io.Discard))
	assert.Error(t, run([]string{"-cost", "x", "p"}, io.Discard, io.Discard))
	assert.Error(t, run([]string{strings.Repeat("a", 73)}, io.Discard, io.Discard))
}
