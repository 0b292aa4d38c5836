package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/food-ordering-api/internal/platform/logger"
)

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusAccepted, map[string]int{"n": 1})

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, `{"n":1}`+"\n", w.Body.String())
}

func TestRespondWithJSON_EncodeFailureIsLogged(t *testing.T) {
	log, buf := logger.NewBufferLogger()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]interface{}{"ch": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), "failed to encode JSON response")
}

func TestRespondWithSuccess(t *testing.T) {
	t.Run("sets status and trace id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req = req.WithContext(WithTraceID(req.Context(), "trace-1"))
		w := httptest.NewRecorder()

		RespondWithSuccess(w, req, Response{Msg: "ok", AccessToken: "tok"})

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeResponse(t, w)
		assert.Equal(t, "ok", body["msg"])
		assert.Equal(t, true, body["status"])
		assert.Equal(t, "tok", body["accessToken"])
		assert.Equal(t, "trace-1", body["traceId"])
		assert.NotContains(t, body, "orderId")
	})

	t.Run("omits empty extras", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		RespondWithSuccess(w, req, Response{Msg: "ok"})

		assert.JSONEq(t, `{"msg":"ok","status":true}`, w.Body.String())
	})
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/signup", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "invalid request body")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"invalid request body","status":false}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		opts      []ResponseOption
		wantLevel string
	}{
		{name: "server error logs at error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
		{name: "client error logs at debug", status: http.StatusBadRequest, wantLevel: "DEBUG"},
		{name: "rate limit logs at warn", status: http.StatusTooManyRequests, wantLevel: "WARN"},
		{
			name:      "elevated client error logs at warn",
			status:    http.StatusForbidden,
			opts:      []ResponseOption{WithElevatedLogLevel()},
			wantLevel: "WARN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, buf := logger.NewBufferLogger()
			req := httptest.NewRequest(http.MethodPost, "/place-order", nil)
			req = req.WithContext(logger.WithLogger(WithTraceID(req.Context(), "abc"), log))
			w := httptest.NewRecorder()

			cause := errors.New("dial postgres://admin:hunter2@db:5432/food failed")
			RespondWithErrorAndLog(w, req, tc.status, "safe message", cause, tc.opts...)

			assert.Equal(t, tc.status, w.Code)
			body := decodeResponse(t, w)
			assert.Equal(t, "safe message", body["msg"])
			assert.Equal(t, false, body["status"])
			assert.Equal(t, "abc", body["traceId"])
			assert.NotContains(t, w.Body.String(), "hunter2")

			entries, err := buf.GetLogEntries()
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tc.wantLevel, entries[0]["level"])
			assert.Equal(t, "API error response", entries[0]["msg"])
			assert.NotContains(t, entries[0]["error"], "hunter2")
			assert.Equal(t, "*errors.errorString", entries[0]["error_type"])
		})
	}
}

func TestRespondWithErrorAndLog_NilError(t *testing.T) {
	log, buf := logger.NewBufferLogger()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	w := httptest.NewRecorder()

	RespondWithErrorAndLog(w, req, http.StatusServiceUnavailable, "unavailable", nil)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0], "error")
}
