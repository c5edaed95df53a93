// Package httptransport assembles the HTTP surface: middleware stack, person
// lookup routes, health probes, and the metrics endpoint.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"personlink/internal/person/handler"
	"personlink/internal/platform/health"
	"personlink/internal/platform/middleware"
)

// Request bodies are small JSON objects; anything past this is abuse.
const maxBodyBytes = 8 << 10

// NewRouter wires all public endpoints with middleware.
func NewRouter(person *handler.Handler, healthHandler *health.Handler, logger *slog.Logger, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		person.Register(r)
	})

	healthHandler.Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
