package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/food-ordering-api/internal/config"
	"github.com/phrazzld/food-ordering-api/internal/mocks"
	"github.com/phrazzld/food-ordering-api/internal/platform/logger"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:                   "127.0.0.1",
			Port:                   5000,
			LogLevel:               "debug",
			ShutdownTimeoutSeconds: 1,
			AllowedOrigins:         []string{"*"},
		},
		Database: config.DatabaseConfig{
			Driver: "postgres",
			URL:    "postgres://localhost:5432/food",
			Name:   "food-ordering",
		},
		Auth: config.AuthConfig{
			JWTSecret:  testSecret,
			BcryptCost: bcrypt.MinCost,
		},
	}
}

// newTestServer serves the full router over an in-memory gateway.
func newTestServer(t *testing.T) (*httptest.Server, *mocks.Gateway) {
	t.Helper()
	gw := mocks.NewGateway()
	log, _ := logger.NewBufferLogger()
	app, err := newApplication(testConfig(), log, gw)
	require.NoError(t, err)

	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)
	return srv, gw
}

type envelope struct {
	Msg         string `json:"msg"`
	Status      bool   `json:"status"`
	AccessToken string `json:"accessToken"`
	OrderID     string `json:"orderId"`
	TraceID     string `json:"traceId"`
}

func postJSON(t *testing.T, url string, body interface{}, token string) (*http.Response, envelope) {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}
