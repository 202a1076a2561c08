package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/go-viper/mapstructure/v2"

	"github.com/iammorganparry/interview-coach/internal/interview"
	"github.com/iammorganparry/interview-coach/internal/models"
	"github.com/iammorganparry/interview-coach/internal/report"
)

const (
	maxBodyBytes  = 1 << 20
	maxAudioBytes = 40 << 20
	maxFormMemory = 1 << 20
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

func writeErrorCode(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg, Code: code})
}

// writeServiceError maps interview and report errors onto status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	status, code := errorStatus(err)
	msg := err.Error()
	if code == "internal_error" {
		msg = "internal server error"
	}
	writeErrorCode(w, status, code, msg)
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, interview.ErrInvalidCategory):
		return http.StatusBadRequest, "invalid_category"
	case errors.Is(err, interview.ErrQuestionGenerationFailed):
		return http.StatusInternalServerError, "question_generation_failed"
	case errors.Is(err, interview.ErrSessionNotFound):
		return http.StatusNotFound, "session_not_found"
	case errors.Is(err, interview.ErrSessionAlreadyCompleted):
		return http.StatusConflict, "session_already_completed"
	case errors.Is(err, interview.ErrNoQuestionsRemaining):
		return http.StatusConflict, "no_questions_remaining"
	case errors.Is(err, interview.ErrSessionInProgress):
		return http.StatusConflict, "session_in_progress"
	case errors.Is(err, report.ErrEmptyAnalysisSet):
		return http.StatusInternalServerError, "empty_analysis_set"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// decodeRequest fills v from a JSON body or, for form submissions, from the
// form fields named by v's mapstructure tags.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return decodeForm(r, v)
	default:
		return decodeJSON(r, v)
	}
}

func decodeForm(r *http.Request, v any) error {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return fmt.Errorf("parse form: %w", err)
	}
	fields := make(map[string]any, len(r.PostForm))
	for k, vals := range r.PostForm {
		if len(vals) > 0 {
			fields[k] = vals[0]
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           v,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(fields)
}
