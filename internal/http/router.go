package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/standings-service/internal/http/handlers"
)

// NewRouter returns the public page handler. Paths are matched as sent so that
// empty standings segments are not collapsed into a redirect.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	return handler
}

// NewOpsRouter registers health and metrics routes for the separate ops listener.
func NewOpsRouter(metricsHandler nethttp.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handlers.Health)
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}
	return mux
}
