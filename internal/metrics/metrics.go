package metrics

import (
	"sync"
	"time"

	"github.com/iammorganparry/interview-coach/internal/models"
)

// Metrics holds process-lifetime counters. The zero value is not usable; call New.
type Metrics struct {
	mu                  sync.RWMutex
	interviewsStarted   int64
	interviewsCompleted int64
	responsesScored     int64
	sessionsEvicted     int64
	transcriptionsTotal int64
	transcriptionsOK    int64
	lastUpdateTime      time.Time
}

func New() *Metrics {
	return &Metrics{
		lastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementInterviewsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interviewsStarted++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementInterviewsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interviewsCompleted++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementResponsesScored() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responsesScored++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) AddSessionsEvicted(n int) {
	if n <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionsEvicted += int64(n)
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementTranscription(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transcriptionsTotal++
	if success {
		m.transcriptionsOK++
	}
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) Snapshot() models.MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return models.MetricsSnapshot{
		InterviewsStarted:   m.interviewsStarted,
		InterviewsCompleted: m.interviewsCompleted,
		ResponsesScored:     m.responsesScored,
		SessionsEvicted:     m.sessionsEvicted,
		TranscriptionsTotal: m.transcriptionsTotal,
		TranscriptionsOK:    m.transcriptionsOK,
		LastUpdateTime:      m.lastUpdateTime,
	}
}
