package api

import (
	"net/http"
	"time"

	"github.com/iammorganparry/interview-coach/internal/interview"
	"github.com/iammorganparry/interview-coach/internal/metrics"
	"github.com/iammorganparry/interview-coach/internal/models"
)

type HealthHandler struct {
	svc              *interview.Service
	metrics          *metrics.Metrics
	speechEnabled    bool
	narrationEnabled bool
}

func NewHealthHandler(svc *interview.Service, m *metrics.Metrics, speechEnabled, narrationEnabled bool) *HealthHandler {
	return &HealthHandler{svc: svc, metrics: m, speechEnabled: speechEnabled, narrationEnabled: narrationEnabled}
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.RootResponse{Message: "Interview coach API", Status: "running"})
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:           "healthy",
		SpeechEnabled:    h.speechEnabled,
		NarrationEnabled: h.narrationEnabled,
		Timestamp:        time.Now().UTC(),
		ActiveSessions:   h.svc.ActiveSessions(),
		Metrics:          h.metrics.Snapshot(),
	})
}
