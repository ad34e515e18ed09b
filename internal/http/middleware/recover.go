package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/preston-bernstein/standings-service/internal/logging"
)

// Recover turns a panic in next into a 500 response so one bad request cannot take
// the process down. http.ErrAbortHandler is re-raised for net/http to handle.
func Recover(baseLogger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger := logging.FromContext(r.Context(), baseLogger)
			logging.Error(logger, "panic serving request", nil,
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())),
			)
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(http.StatusText(http.StatusInternalServerError) + "\n"))
		}()
		next.ServeHTTP(w, r)
	})
}
