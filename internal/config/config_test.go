package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allVars = []string{
	"PORT", "LOG_LEVEL", "QUESTION_BANK_PATH", "QUESTIONS_PER_SESSION",
	"SESSION_TTL", "SESSION_SWEEP_INTERVAL", "RATE_LIMIT_PER_MINUTE",
	"SPEECH_BASE_URL", "SPEECH_API_KEY", "SPEECH_MODEL",
	"TTS_BASE_URL", "TTS_MODEL", "TTS_VOICE", "INTERVIEW_SERVER_URL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8, cfg.QuestionsPerSession)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10*time.Minute, cfg.SessionSweepInterval)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, "whisper-1", cfg.SpeechModel)
	assert.Equal(t, "tts-1", cfg.TTSModel)
	assert.Equal(t, "alloy", cfg.TTSVoice)
	assert.Equal(t, "http://localhost:8000", cfg.InterviewServerURL)
	assert.False(t, cfg.SpeechEnabled())
	assert.False(t, cfg.NarrationEnabled())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("QUESTIONS_PER_SESSION", "5")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	t.Setenv("SPEECH_BASE_URL", "http://stt:9000")
	t.Setenv("TTS_BASE_URL", "http://tts:9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5, cfg.QuestionsPerSession)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.Zero(t, cfg.RateLimitPerMinute)
	assert.True(t, cfg.SpeechEnabled())
	assert.True(t, cfg.NarrationEnabled())
}

func TestLoadIgnoresUnparseableValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")
	t.Setenv("SESSION_TTL", "a day")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port too high", "PORT", "70000"},
		{"zero questions", "QUESTIONS_PER_SESSION", "0"},
		{"negative ttl", "SESSION_TTL", "-1h"},
		{"zero sweep interval", "SESSION_SWEEP_INTERVAL", "0s"},
		{"negative rate limit", "RATE_LIMIT_PER_MINUTE", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("TTS_VOICE", "")
	require.NoError(t, os.Unsetenv("TTS_VOICE"))
	t.Setenv("TTS_MODEL", "tts-hd")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TTS_VOICE=nova\nTTS_MODEL=ignored\n"), 0o644))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "nova", os.Getenv("TTS_VOICE"))
	assert.Equal(t, "tts-hd", os.Getenv("TTS_MODEL"))

	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
