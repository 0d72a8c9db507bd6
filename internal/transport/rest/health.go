package rest

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/heartmarshall/wordlens/internal/domain"
)

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one component: ok, down or disabled.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  map[string]func(ctx context.Context) error
	version string
}

// NewHealthHandler creates a HealthHandler. A check returning
// domain.ErrNotInitialized marks its component disabled, which does not
// fail the overall status.
func NewHealthHandler(checks map[string]func(ctx context.Context) error, version string) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready returns 200 when every enabled component is up, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.run(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health is Ready with per-component status, latency and the version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.run(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) run(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	overall := "ok"
	components := make(map[string]CompStatus, len(names))
	for _, name := range names {
		start := time.Now()
		err := h.checks[name](ctx)
		latency := time.Since(start)

		switch {
		case err == nil:
			components[name] = CompStatus{Status: "ok", Latency: latency.String()}
		case errors.Is(err, domain.ErrNotInitialized):
			components[name] = CompStatus{Status: "disabled"}
		default:
			components[name] = CompStatus{Status: "down", Error: err.Error()}
			overall = "down"
		}
	}
	return overall, components
}

func httpStatus(overall string) int {
	if overall != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
