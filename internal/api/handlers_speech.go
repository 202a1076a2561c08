package api

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iammorganparry/interview-coach/internal/metrics"
	"github.com/iammorganparry/interview-coach/internal/models"
	"github.com/iammorganparry/interview-coach/internal/speech"
)

// SpeechHandler fronts the speech collaborators. Either may be nil when the
// matching upstream is not configured.
type SpeechHandler struct {
	transcriber speech.Transcriber
	narrator    speech.Narrator
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

func NewSpeechHandler(transcriber speech.Transcriber, narrator speech.Narrator, m *metrics.Metrics, logger *slog.Logger) *SpeechHandler {
	return &SpeechHandler{transcriber: transcriber, narrator: narrator, metrics: m, logger: logger}
}

// SpeechToText handles POST /speech-to-text. Failures are reported in the
// body with a 200 status so the browser client can fall back to typing.
func (h *SpeechHandler) SpeechToText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAudioBytes)

	var req models.SpeechToTextRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, "invalid request body")
		return
	}
	if h.transcriber == nil {
		h.fail(w, "speech recognition not available")
		return
	}

	audio, err := base64.StdEncoding.DecodeString(stripDataURL(req.AudioData))
	if err != nil || len(audio) == 0 {
		h.fail(w, "invalid audio data")
		return
	}

	text, err := h.transcriber.Transcribe(r.Context(), audio)
	if err != nil {
		h.logger.Warn("transcription failed", "error", err, "audio_bytes", len(audio), "request_id", GetRequestID(r))
		msg := "speech recognition service error"
		if errors.Is(err, speech.ErrNoSpeech) {
			msg = "could not understand audio"
		}
		h.fail(w, msg)
		return
	}

	h.metrics.IncrementTranscription(true)
	writeJSON(w, http.StatusOK, models.SpeechToTextResponse{Success: true, Text: text})
}

func (h *SpeechHandler) fail(w http.ResponseWriter, msg string) {
	h.metrics.IncrementTranscription(false)
	writeJSON(w, http.StatusOK, models.SpeechToTextResponse{Success: false, Error: &msg})
}

// Narrate handles POST /narrate
func (h *SpeechHandler) Narrate(w http.ResponseWriter, r *http.Request) {
	if h.narrator == nil {
		writeErrorCode(w, http.StatusServiceUnavailable, "narration_unavailable", "narration not available")
		return
	}

	var req models.NarrateRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := decodeJSON(r, &req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_request", "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeErrorCode(w, http.StatusBadRequest, "invalid_request", "text is required")
		return
	}

	audio, err := h.narrator.Narrate(r.Context(), req.Text)
	if err != nil {
		h.logger.Error("narration failed", "error", err, "request_id", GetRequestID(r))
		writeErrorCode(w, http.StatusBadGateway, "narration_failed", "narration failed")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}

// stripDataURL accepts both raw base64 and "data:audio/wav;base64,..." input.
func stripDataURL(s string) string {
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			return s[i+1:]
		}
	}
	return s
}
