// Package sessions keeps interview sessions in memory. Sessions are lost on
// restart.
package sessions

import (
	"errors"
	"sync"
	"time"

	"github.com/iammorganparry/interview-coach/internal/models"
)

var ErrDuplicateID = errors.New("session id already in use")

// Session is one interview attempt. All fields except ID are guarded by the
// session lock; callers must hold it (Lock/Unlock) while reading or writing.
type Session struct {
	mu sync.Mutex

	ID           string
	UserID       string
	Category     models.Category
	Questions    []string
	Turns        []models.Turn
	Status       models.SessionStatus
	StartedAt    time.Time
	CompletedAt  *time.Time
	LastActivity time.Time
	Final        *models.FinalReport

	evicted bool
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Cursor is the index of the next unanswered question.
func (s *Session) Cursor() int { return len(s.Turns) }

// Evicted reports whether the store dropped the session after the caller
// looked it up.
func (s *Session) Evicted() bool { return s.evicted }

// Snapshot returns a deep copy of the session. The caller must hold the lock.
func (s *Session) Snapshot() models.SessionSnapshot {
	snap := models.SessionSnapshot{
		InterviewID:     s.ID,
		UserID:          s.UserID,
		Category:        s.Category,
		CurrentQuestion: s.Cursor(),
		TotalQuestions:  len(s.Questions),
		Questions:       append([]string(nil), s.Questions...),
		Responses:       make([]string, 0, len(s.Turns)),
		Scores:          make([]models.Analysis, 0, len(s.Turns)),
		Status:          s.Status,
		StartTime:       s.StartedAt,
		FinalResult:     s.Final.Clone(),
	}
	if s.CompletedAt != nil {
		at := *s.CompletedAt
		snap.CompletedAt = &at
	}
	for _, turn := range s.Turns {
		snap.Responses = append(snap.Responses, turn.Response)
		snap.Scores = append(snap.Scores, turn.Analysis.Clone())
	}
	return snap
}

// Store maps session ids to sessions. Lookups take a read lock only, so
// submissions on different sessions do not contend.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Insert registers sess under sess.ID.
func (s *Store) Insert(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sess.ID]; ok {
		return ErrDuplicateID
	}
	s.sessions[sess.ID] = sess
	return nil
}

func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Evict removes sessions whose last activity is before cutoff and returns how
// many were removed. A submission already holding an evicted session sees
// Evicted() == true once it takes the session lock.
func (s *Store) Evict(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		sess.Lock()
		idle := sess.LastActivity.Before(cutoff)
		if idle {
			sess.evicted = true
		}
		sess.Unlock()

		if idle {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}
