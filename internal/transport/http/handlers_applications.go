package httptransport

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"llm-intake/internal/intake/models"
	"llm-intake/internal/intake/service"
	"llm-intake/internal/platform/metrics"
	"llm-intake/internal/transport/http/shared"
	dErrors "llm-intake/pkg/domain-errors"
	"llm-intake/pkg/httputil"
	"llm-intake/pkg/validation"
)

// Handler delegates to the intake service.
type Handler struct {
	svc     *service.Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewHandler(svc *service.Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{svc: svc, logger: logger, metrics: m}
}

func (h *Handler) observe(endpoint string, start time.Time) {
	if h.metrics != nil {
		h.metrics.EndpointLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

func (h *Handler) decodeSnapshot(w http.ResponseWriter, r *http.Request) (models.Snapshot, bool) {
	var snap models.Snapshot
	if err := httputil.DecodeJSON(r, &snap); err != nil {
		shared.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed snapshot payload"))
		return models.Snapshot{}, false
	}
	if err := validation.Validate(&snap); err != nil {
		shared.WriteError(w, err)
		return models.Snapshot{}, false
	}
	return snap, true
}

func (h *Handler) handleValidateStep(w http.ResponseWriter, r *http.Request) {
	defer h.observe("validate_step", time.Now())

	step, err := models.ParseStep(chi.URLParam(r, "step"))
	if err != nil {
		shared.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "unknown step"))
		return
	}
	snap, ok := h.decodeSnapshot(w, r)
	if !ok {
		return
	}
	res, err := h.svc.EvaluateStep(r.Context(), step, snap)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	defer h.observe("summary", time.Now())

	snap, ok := h.decodeSnapshot(w, r)
	if !ok {
		return
	}
	sum, err := h.svc.Summary(r.Context(), snap)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sum)
}

func (h *Handler) handleRecap(w http.ResponseWriter, r *http.Request) {
	defer h.observe("recap", time.Now())

	snap, ok := h.decodeSnapshot(w, r)
	if !ok {
		return
	}
	recap, err := h.svc.Recap(r.Context(), snap)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, recap)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	defer h.observe("submit", time.Now())

	snap, ok := h.decodeSnapshot(w, r)
	if !ok {
		return
	}
	receipt, err := h.svc.Submit(r.Context(), service.SubmitRequest{
		Snapshot:  snap,
		UserAgent: r.UserAgent(),
		RemoteIP:  remoteIP(r),
	})
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, receipt)
}

func (h *Handler) handleGetByReference(w http.ResponseWriter, r *http.Request) {
	defer h.observe("get_by_reference", time.Now())

	app, err := h.svc.GetByReference(r.Context(), chi.URLParam(r, "reference"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, app)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	defer h.observe("list", time.Now())

	apps, err := h.svc.ListApplications(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"applications": apps,
		"count":        len(apps),
	})
}

func remoteIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
