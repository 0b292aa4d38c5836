package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/food-ordering-api/internal/mocks"
	"github.com/phrazzld/food-ordering-api/internal/platform/logger"
	"github.com/phrazzld/food-ordering-api/internal/service"
	"github.com/phrazzld/food-ordering-api/internal/service/auth"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

type testAPI struct {
	gateway *mocks.Gateway
	tokens  auth.TokenService
	now     time.Time
	auth    *AuthHandler
	orders  *OrderHandler
	health  *HealthHandler
	logs    *logger.TestLogBuffer
}

// newTestAPI wires the handlers to real services over an in-memory gateway.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	api := &testAPI{
		gateway: mocks.NewGateway(),
		now:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	tokens, err := auth.NewTokenServiceWithClock(testSecret, func() time.Time { return api.now })
	require.NoError(t, err)
	api.tokens = tokens

	log, buf := logger.NewBufferLogger()
	api.logs = buf
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	api.auth = NewAuthHandler(service.NewAuthService(api.gateway, hasher, tokens, log))
	api.orders = NewOrderHandler(service.NewOrderService(api.gateway, tokens, log))
	api.health = NewHealthHandler(api.gateway)
	return api
}

type response struct {
	Msg         string `json:"msg"`
	Status      bool   `json:"status"`
	AccessToken string `json:"accessToken"`
	OrderID     string `json:"orderId"`
}

func do(t *testing.T, h http.HandlerFunc, method, path, body string, headers map[string]string) (int, response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h(w, req)

	var resp response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w.Code, resp
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// signup registers a user through the handler and returns the token.
func (a *testAPI) signup(t *testing.T, name, email, password string) string {
	t.Helper()
	body, err := json.Marshal(SignupRequest{Name: name, Email: email, Password: password})
	require.NoError(t, err)
	code, resp := do(t, a.auth.Signup, http.MethodPost, "/signup", string(body), nil)
	require.Equal(t, http.StatusOK, code, resp.Msg)
	return resp.AccessToken
}
