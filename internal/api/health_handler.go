package api

import (
	"context"
	"net/http"
	"time"

	"github.com/phrazzld/food-ordering-api/internal/api/shared"
)

// HealthCheckTimeout bounds a single store ping.
const HealthCheckTimeout = 2 * time.Second

// Pinger reports whether the backing store is reachable.
// store.Gateway satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles GET /health.
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store Pinger) *HealthHandler {
	if store == nil {
		panic("health handler requires a pinger")
	}
	return &HealthHandler{store: store}
}

// Health responds 200 when the store answers a ping and 503 otherwise.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), HealthCheckTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, MsgUnavailable, err)
		return
	}
	shared.RespondWithSuccess(w, r, shared.Response{Msg: MsgHealthy})
}
