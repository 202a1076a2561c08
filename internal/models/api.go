package models

import "time"

// StartInterviewRequest is the body of POST /start-interview. It is accepted
// as JSON or as a form.
type StartInterviewRequest struct {
	Category string `json:"category" mapstructure:"category"`
	UserID   string `json:"user_id" mapstructure:"user_id"`
}

// StartInterviewResponse is returned from POST /start-interview.
type StartInterviewResponse struct {
	InterviewID    string   `json:"interview_id"`
	Question       string   `json:"question"`
	QuestionIndex  int      `json:"question_index"`
	TotalQuestions int      `json:"total_questions"`
	Category       Category `json:"category"`
}

// SubmitResponseRequest is the body of POST /submit-response.
type SubmitResponseRequest struct {
	InterviewID  string `json:"interview_id" mapstructure:"interview_id"`
	ResponseText string `json:"response_text" mapstructure:"response_text"`
}

// ContinueResponse is returned while questions remain.
type ContinueResponse struct {
	InterviewComplete       bool     `json:"interview_complete"`
	NextQuestion            string   `json:"next_question"`
	QuestionIndex           int      `json:"question_index"`
	TotalQuestions          int      `json:"total_questions"`
	CurrentResponseAnalysis Analysis `json:"current_response_analysis"`
}

// CompleteResponse is returned for the answer that finishes the interview.
type CompleteResponse struct {
	InterviewComplete       bool                  `json:"interview_complete"`
	FinalScore              float64               `json:"final_score"`
	DetailedFeedback        string                `json:"detailed_feedback"`
	AreasForImprovement     []string              `json:"areas_for_improvement"`
	StrengthAnalysis        []string              `json:"strength_analysis"`
	CategoryBreakdown       map[Dimension]float64 `json:"category_breakdown"`
	CurrentResponseAnalysis Analysis              `json:"current_response_analysis"`
}

// SpeechToTextRequest carries base64-encoded audio (WAV as recorded by the client).
type SpeechToTextRequest struct {
	AudioData string `json:"audio_data"`
}

// SpeechToTextResponse always comes back with 200; Success tells the caller
// whether Text can be used.
type SpeechToTextResponse struct {
	Success bool    `json:"success"`
	Text    string  `json:"text"`
	Error   *string `json:"error"`
}

// NarrateRequest is the body of POST /narrate.
type NarrateRequest struct {
	Text string `json:"text"`
}

// RootResponse is returned from GET /.
type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthResponse is returned from GET /health.
type HealthResponse struct {
	Status           string          `json:"status"`
	SpeechEnabled    bool            `json:"speech_enabled"`
	NarrationEnabled bool            `json:"narration_enabled"`
	Timestamp        time.Time       `json:"timestamp"`
	ActiveSessions   int             `json:"active_sessions"`
	Metrics          MetricsSnapshot `json:"metrics"`
}

// MetricsSnapshot is a copy of the process counters.
type MetricsSnapshot struct {
	InterviewsStarted   int64     `json:"interviews_started"`
	InterviewsCompleted int64     `json:"interviews_completed"`
	ResponsesScored     int64     `json:"responses_scored"`
	SessionsEvicted     int64     `json:"sessions_evicted"`
	TranscriptionsTotal int64     `json:"transcriptions_total"`
	TranscriptionsOK    int64     `json:"transcriptions_ok"`
	LastUpdateTime      time.Time `json:"last_update_time"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
