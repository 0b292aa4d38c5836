package service

import (
	"testing"
	"time"

	"github.com/phrazzld/food-ordering-api/internal/mocks"
	"github.com/phrazzld/food-ordering-api/internal/platform/logger"
	"github.com/phrazzld/food-ordering-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

type testDeps struct {
	gateway *mocks.Gateway
	hasher  auth.PasswordHasher
	tokens  auth.TokenService
	auth    AuthService
	orders  OrderService
}

// newTestDeps wires both services against an in-memory gateway, a fast
// bcrypt hasher and a real token service whose clock reads *now.
func newTestDeps(t *testing.T, now *time.Time) *testDeps {
	t.Helper()

	tokens, err := auth.NewTokenServiceWithClock(testSecret, func() time.Time { return *now })
	require.NoError(t, err)

	log, _ := logger.NewBufferLogger()
	gw := mocks.NewGateway()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	return &testDeps{
		gateway: gw,
		hasher:  hasher,
		tokens:  tokens,
		auth:    NewAuthService(gw, hasher, tokens, log),
		orders:  NewOrderService(gw, tokens, log),
	}
}

func assertLeasesBalanced(t *testing.T, gw *mocks.Gateway) {
	t.Helper()
	acquired, released := gw.Leases()
	assert.Equal(t, acquired, released, "every acquired lease must be released")
}

func intPtr(n int) *int { return &n }
