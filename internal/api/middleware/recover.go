package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/food-ordering-api/internal/api"
	"github.com/phrazzld/food-ordering-api/internal/api/shared"
	"github.com/phrazzld/food-ordering-api/internal/platform/logger"
)

// Recoverer turns a handler panic into the JSON failure envelope with a 500
// status. The panic value and stack are logged, never sent to the client.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("panic recovered",
				slog.String("panic", fmt.Sprint(rec)),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("stack", string(debug.Stack())))

			shared.RespondWithError(w, r, http.StatusInternalServerError, api.MsgInternal)
		}()

		next.ServeHTTP(w, r)
	})
}
