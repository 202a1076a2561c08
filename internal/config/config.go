package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     int
	LogLevel string
	// Interviews
	QuestionBankPath    string
	QuestionsPerSession int
	// Session lifecycle
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	// Per-client request budget, 0 disables limiting
	RateLimitPerMinute int
	// Speech collaborators, disabled when the base URL is empty
	SpeechBaseURL string
	SpeechAPIKey  string
	SpeechModel   string
	TTSBaseURL    string
	TTSModel      string
	TTSVoice      string
	// MCP adapter
	InterviewServerURL string
}

// Load reads configuration from the environment, after seeding it from a
// .env file in the working directory when one exists.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:                 envInt("PORT", 8000),
		LogLevel:             envStr("LOG_LEVEL", "info"),
		QuestionBankPath:     envStr("QUESTION_BANK_PATH", ""),
		QuestionsPerSession:  envInt("QUESTIONS_PER_SESSION", 8),
		SessionTTL:           envDuration("SESSION_TTL", 24*time.Hour),
		SessionSweepInterval: envDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),
		RateLimitPerMinute:   envInt("RATE_LIMIT_PER_MINUTE", 120),
		SpeechBaseURL:        envStr("SPEECH_BASE_URL", ""),
		SpeechAPIKey:         envStr("SPEECH_API_KEY", ""),
		SpeechModel:          envStr("SPEECH_MODEL", "whisper-1"),
		TTSBaseURL:           envStr("TTS_BASE_URL", ""),
		TTSModel:             envStr("TTS_MODEL", "tts-1"),
		TTSVoice:             envStr("TTS_VOICE", "alloy"),
		InterviewServerURL:   envStr("INTERVIEW_SERVER_URL", "http://localhost:8000"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) SpeechEnabled() bool    { return c.SpeechBaseURL != "" }
func (c *Config) NarrationEnabled() bool { return c.TTSBaseURL != "" }

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.QuestionsPerSession < 1 {
		return fmt.Errorf("QUESTIONS_PER_SESSION must be positive, got %d", c.QuestionsPerSession)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.SessionSweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive, got %s", c.SessionSweepInterval)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative, got %d", c.RateLimitPerMinute)
	}
	if c.InterviewServerURL == "" {
		return fmt.Errorf("INTERVIEW_SERVER_URL must not be empty")
	}
	return nil
}

// loadDotEnv never overrides variables already set in the environment.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
