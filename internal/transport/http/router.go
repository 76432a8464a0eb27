// Package httptransport is the thin HTTP layer. Handlers delegate to the
// intake service so transport concerns remain isolated from the rules engine.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"llm-intake/internal/platform/health"
	"llm-intake/internal/platform/middleware"
)

// RouterDeps bundles what the router needs besides the handler itself.
type RouterDeps struct {
	Logger    *slog.Logger
	Health    *health.Handler
	Validator middleware.TokenValidator
	APIKeys   middleware.APIKeyVerifier
	AuthObs   middleware.AuthObserver
}

// NewRouter wires all endpoints with the middleware stack.
func NewRouter(h *Handler, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	if deps.Health != nil {
		deps.Health.Register(r)
	}
	r.Handle("/metrics", promhttp.Handler())

	staff := middleware.RequireStaff(deps.Validator, deps.APIKeys, deps.AuthObs, deps.Logger)

	r.Route("/applications", func(r chi.Router) {
		// Applicant-facing endpoints, no authentication: the form is public.
		r.Post("/validate/{step}", h.handleValidateStep)
		r.Post("/summary", h.handleSummary)
		r.Post("/recap", h.handleRecap)
		r.Post("/submit", h.handleSubmit)

		// Back-office reads require staff credentials.
		r.With(staff).Get("/", h.handleList)
		r.With(staff).Get("/{reference}", h.handleGetByReference)
	})

	return r
}
