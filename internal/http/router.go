// Package http exposes the companion's operational endpoints: liveness,
// readiness, a catalog status summary and the Prometheus scrape handler.
package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucstrike/game-day-radar-seeker/internal/http/handlers"
	"github.com/lucstrike/game-day-radar-seeker/internal/http/middleware"
)

// NewRouter registers the operational routes. metricsHandler may be nil.
func NewRouter(handler *handlers.Handler, metricsHandler nethttp.Handler, logger *slog.Logger) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return middleware.LoggingMiddleware(logger, next)
	})
	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/status", handler.Status)
	if metricsHandler != nil {
		r.Method(nethttp.MethodGet, "/metrics", metricsHandler)
	}
	return r
}
