package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		api := newTestAPI(t)

		code, resp := do(t, api.health.Health, http.MethodGet, "/health", "", nil)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, MsgHealthy, resp.Msg)
		assert.True(t, resp.Status)
	})

	t.Run("store unreachable", func(t *testing.T) {
		api := newTestAPI(t)
		api.gateway.PingErr = errors.New("connection refused")

		code, resp := do(t, api.health.Health, http.MethodGet, "/health", "", nil)

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, MsgUnavailable, resp.Msg)
		assert.False(t, resp.Status)
	})
}

func TestNewHealthHandler_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewHealthHandler(nil) })
}
