package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/iammorganparry/interview-coach/internal/interview"
	"github.com/iammorganparry/interview-coach/internal/models"
	"github.com/iammorganparry/interview-coach/internal/report"
)

// InterviewHandler serves the interview life cycle.
type InterviewHandler struct {
	svc    *interview.Service
	logger *slog.Logger
}

func NewInterviewHandler(svc *interview.Service, logger *slog.Logger) *InterviewHandler {
	return &InterviewHandler{svc: svc, logger: logger}
}

// Categories handles GET /categories
func (h *InterviewHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Categories())
}

// Start handles POST /start-interview
func (h *InterviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req models.StartInterviewRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_request", "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		writeErrorCode(w, http.StatusBadRequest, "invalid_request", "category is required")
		return
	}

	started, err := h.svc.CreateSession(models.Category(strings.TrimSpace(req.Category)), strings.TrimSpace(req.UserID))
	if err != nil {
		h.logError(r, "start interview failed", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.StartInterviewResponse{
		InterviewID:    started.InterviewID,
		Question:       started.Question,
		QuestionIndex:  started.QuestionIndex,
		TotalQuestions: started.TotalQuestions,
		Category:       started.Category,
	})
}

// Submit handles POST /submit-response
func (h *InterviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitResponseRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_request", "invalid request body: "+err.Error())
		return
	}
	if req.InterviewID == "" {
		writeErrorCode(w, http.StatusBadRequest, "invalid_request", "interview_id is required")
		return
	}

	res, err := h.svc.SubmitResponse(req.InterviewID, req.ResponseText)
	if err != nil {
		h.logError(r, "submit response failed", err)
		writeServiceError(w, err)
		return
	}

	switch res := res.(type) {
	case interview.Continue:
		writeJSON(w, http.StatusOK, models.ContinueResponse{
			InterviewComplete:       false,
			NextQuestion:            res.NextQuestion,
			QuestionIndex:           res.QuestionIndex,
			TotalQuestions:          res.TotalQuestions,
			CurrentResponseAnalysis: res.Analysis,
		})
	case interview.Complete:
		writeJSON(w, http.StatusOK, models.CompleteResponse{
			InterviewComplete:       true,
			FinalScore:              res.Report.OverallScore,
			DetailedFeedback:        res.Report.DetailedFeedback,
			AreasForImprovement:     res.Report.AreasForImprovement,
			StrengthAnalysis:        res.Report.StrengthAnalysis,
			CategoryBreakdown:       res.Report.CategoryBreakdown,
			CurrentResponseAnalysis: res.Analysis,
		})
	}
}

// Debug handles GET /debug-interview/{id}
func (h *InterviewHandler) Debug(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Inspect(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// Report handles GET /interviews/{id}/report?format=markdown|html
func (h *InterviewHandler) Report(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	body, err := h.svc.Report(id, format)
	if err != nil {
		h.logError(r, "render report failed", err)
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if format == report.FormatMarkdown {
		w.Header().Set("Content-Disposition", `attachment; filename="interview-`+id+`.md"`)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *InterviewHandler) logError(r *http.Request, msg string, err error) {
	status, _ := errorStatus(err)
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(r.Context(), level, msg, "error", err, "request_id", GetRequestID(r))
}
