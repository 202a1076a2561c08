package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/klauspost/compress/gzhttp"

	"github.com/iammorganparry/interview-coach/internal/interview"
	"github.com/iammorganparry/interview-coach/internal/metrics"
	"github.com/iammorganparry/interview-coach/internal/speech"
)

// Deps are the collaborators served by the router. Transcriber, Narrator and
// RateLimiter are optional.
type Deps struct {
	Service     *interview.Service
	Metrics     *metrics.Metrics
	Transcriber speech.Transcriber
	Narrator    speech.Narrator
	RateLimiter *RateLimiter
	Logger      *slog.Logger
}

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(d Deps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (runs on ALL routes including /health)
	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Logger(d.Logger))
	r.Use(Recovery(d.Logger))
	if d.RateLimiter != nil {
		r.Use(RateLimit(d.RateLimiter))
	}
	r.Use(func(next http.Handler) http.Handler { return gzhttp.GzipHandler(next) })

	healthH := NewHealthHandler(d.Service, d.Metrics, d.Transcriber != nil, d.Narrator != nil)
	interviewH := NewInterviewHandler(d.Service, d.Logger)
	speechH := NewSpeechHandler(d.Transcriber, d.Narrator, d.Metrics, d.Logger)

	// Health
	r.Get("/", healthH.Root)
	r.Get("/health", healthH.Health)

	// Interviews
	r.Get("/categories", interviewH.Categories)
	r.Post("/start-interview", interviewH.Start)
	r.Post("/submit-response", interviewH.Submit)
	r.Get("/debug-interview/{id}", interviewH.Debug)
	r.Get("/interviews/{id}/report", interviewH.Report)

	// Speech
	r.Post("/speech-to-text", speechH.SpeechToText)
	r.Post("/narrate", speechH.Narrate)

	return r
}
