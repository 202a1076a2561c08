// Package speech talks to OpenAI-compatible audio endpoints: transcription of
// recorded answers and narration of questions.
package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

//go:generate go tool mockgen -source=speech.go -destination=speechtest/mock_speech.go -package=speechtest

var ErrNoSpeech = errors.New("no speech recognized in audio")

// Transcriber converts recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Narrator converts text into spoken audio (MP3).
type Narrator interface {
	Narrate(ctx context.Context, text string) ([]byte, error)
}

// maxAudioBytes bounds upstream responses read into memory.
const maxAudioBytes = 25 << 20

type client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func newClient(baseURL, apiKey, model string) client {
	return client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c client) do(req *http.Request) ([]byte, error) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// HealthCheck verifies the server is reachable.
func (c client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/models", nil)
	if err != nil {
		return fmt.Errorf("speech health check: %w", err)
	}
	if _, err := c.do(req); err != nil {
		return fmt.Errorf("speech health check: %w", err)
	}
	return nil
}
