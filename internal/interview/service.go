// Package interview drives interview sessions: it creates them from the
// question bank, scores each submitted answer and produces the final report
// when the last question is answered.
package interview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iammorganparry/interview-coach/internal/metrics"
	"github.com/iammorganparry/interview-coach/internal/models"
	"github.com/iammorganparry/interview-coach/internal/report"
	"github.com/iammorganparry/interview-coach/internal/sessions"
)

// DefaultUserID is used when a session is started without a user id.
const DefaultUserID = "default_user"

const maxIDAttempts = 3

// QuestionSource supplies question templates and category metadata.
type QuestionSource interface {
	QuestionsFor(category models.Category, count int) []string
	Categories() []models.CategoryInfo
	DisplayName(category models.Category) string
}

// Scorer evaluates one answer. Implementations must be pure.
type Scorer interface {
	Score(question, response string, category models.Category) models.Analysis
}

// Started is the result of CreateSession.
type Started struct {
	InterviewID    string
	Question       string
	QuestionIndex  int
	TotalQuestions int
	Category       models.Category
}

// SubmitResult is either Continue or Complete.
type SubmitResult interface {
	submitResult()
}

// Continue carries the next question after a non-final answer.
type Continue struct {
	NextQuestion   string
	QuestionIndex  int
	TotalQuestions int
	Analysis       models.Analysis
}

// Complete carries the final report after the last answer.
type Complete struct {
	Report   *models.FinalReport
	Analysis models.Analysis
}

func (Continue) submitResult() {}
func (Complete) submitResult() {}

// Service is the session controller.
type Service struct {
	questions  QuestionSource
	scorer     Scorer
	store      *sessions.Store
	metrics    *metrics.Metrics
	logger     *slog.Logger
	perSession int

	now   func() time.Time
	newID func() string
}

type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides session id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService creates a session controller that asks perSession questions per
// interview.
func NewService(questions QuestionSource, scorer Scorer, store *sessions.Store, m *metrics.Metrics, logger *slog.Logger, perSession int, opts ...Option) *Service {
	s := &Service{
		questions:  questions,
		scorer:     scorer,
		store:      store,
		metrics:    m,
		logger:     logger,
		perSession: perSession,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Categories returns the interview categories in presentation order.
func (s *Service) Categories() []models.CategoryInfo {
	return s.questions.Categories()
}

// ActiveSessions returns the number of sessions currently held in memory.
func (s *Service) ActiveSessions() int {
	return s.store.Len()
}

// CreateSession starts a new interview. Nothing is registered on failure.
func (s *Service) CreateSession(category models.Category, userID string) (Started, error) {
	if !category.IsValid() {
		return Started{}, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if userID == "" {
		userID = DefaultUserID
	}

	qs := s.questions.QuestionsFor(category, s.perSession)
	if len(qs) < s.perSession {
		return Started{}, fmt.Errorf("%w: %s has %d of %d", ErrQuestionGenerationFailed, category, len(qs), s.perSession)
	}

	now := s.now()
	sess := &sessions.Session{
		UserID:       userID,
		Category:     category,
		Questions:    qs,
		Turns:        make([]models.Turn, 0, len(qs)),
		Status:       models.StatusActive,
		StartedAt:    now,
		LastActivity: now,
	}

	var err error
	for range maxIDAttempts {
		sess.ID = s.newID()
		if err = s.store.Insert(sess); !errors.Is(err, sessions.ErrDuplicateID) {
			break
		}
	}
	if err != nil {
		return Started{}, fmt.Errorf("register session: %w", err)
	}

	s.metrics.IncrementInterviewsStarted()
	s.logger.Info("interview started",
		"interview_id", sess.ID,
		"category", category,
		"total_questions", len(qs),
	)

	return Started{
		InterviewID:    sess.ID,
		Question:       qs[0],
		QuestionIndex:  0,
		TotalQuestions: len(qs),
		Category:       category,
	}, nil
}

// SubmitResponse scores responseText against the current question and
// advances the session. Submissions on one session are serialized.
func (s *Service) SubmitResponse(id, responseText string) (SubmitResult, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.Lock()
	defer sess.Unlock()

	if sess.Evicted() {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if sess.Status == models.StatusCompleted {
		return nil, fmt.Errorf("%w: %s", ErrSessionAlreadyCompleted, id)
	}
	cursor := sess.Cursor()
	total := len(sess.Questions)
	if cursor >= total {
		return nil, fmt.Errorf("%w: %s", ErrNoQuestionsRemaining, id)
	}

	question := sess.Questions[cursor]
	analysis := s.scorer.Score(question, responseText, sess.Category)

	var final *models.FinalReport
	if cursor+1 == total {
		analyses := make([]models.Analysis, 0, total)
		for _, turn := range sess.Turns {
			analyses = append(analyses, turn.Analysis)
		}
		final, err = report.Aggregate(append(analyses, analysis))
		if err != nil {
			return nil, fmt.Errorf("aggregate %s: %w", id, err)
		}
	}

	now := s.now()
	sess.Turns = append(sess.Turns, models.Turn{
		Question:   question,
		Response:   responseText,
		Analysis:   analysis,
		AnsweredAt: now,
	})
	sess.LastActivity = now
	s.metrics.IncrementResponsesScored()
	s.logger.Debug("response scored",
		"interview_id", id,
		"question_index", cursor,
		"response_len", len(responseText),
		"score", analysis.OverallScore,
	)

	if final == nil {
		return Continue{
			NextQuestion:   sess.Questions[cursor+1],
			QuestionIndex:  cursor + 1,
			TotalQuestions: total,
			Analysis:       analysis.Clone(),
		}, nil
	}

	sess.Final = final
	sess.Status = models.StatusCompleted
	sess.CompletedAt = &now
	s.metrics.IncrementInterviewsCompleted()
	s.logger.Info("interview completed",
		"interview_id", id,
		"category", sess.Category,
		"overall_score", final.OverallScore,
		"duration_ms", now.Sub(sess.StartedAt).Milliseconds(),
	)

	return Complete{Report: final.Clone(), Analysis: analysis.Clone()}, nil
}

// Inspect returns a deep copy of the session.
func (s *Service) Inspect(id string) (models.SessionSnapshot, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return models.SessionSnapshot{}, err
	}
	sess.Lock()
	defer sess.Unlock()

	if sess.Evicted() {
		return models.SessionSnapshot{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess.Snapshot(), nil
}

// Report renders the report of a completed session.
func (s *Service) Report(id string, f report.Format) ([]byte, error) {
	snap, err := s.Inspect(id)
	if err != nil {
		return nil, err
	}
	if snap.Status != models.StatusCompleted {
		return nil, fmt.Errorf("%w: %s", ErrSessionInProgress, id)
	}
	return report.Render(snap, s.questions.DisplayName(snap.Category), f)
}

// Sweep evicts sessions idle for longer than ttl and returns how many were
// removed.
func (s *Service) Sweep(ttl time.Duration) int {
	n := s.store.Evict(s.now().Add(-ttl))
	if n > 0 {
		s.metrics.AddSessionsEvicted(n)
		s.logger.Info("evicted idle interviews", "count", n, "ttl", ttl.String())
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is cancelled.
func (s *Service) RunSweeper(ctx context.Context, interval, ttl time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Sweep(ttl)
		}
	}
}

func (s *Service) lookup(id string) (*sessions.Session, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}
