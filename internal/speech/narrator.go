package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// HTTPNarrator calls POST /v1/audio/speech.
type HTTPNarrator struct {
	client
	voice string
}

func NewNarrator(baseURL, apiKey, model, voice string) *HTTPNarrator {
	return &HTTPNarrator{client: newClient(baseURL, apiKey, model), voice: voice}
}

type speechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

// Narrate returns MP3 audio of text.
func (n *HTTPNarrator) Narrate(ctx context.Context, text string) ([]byte, error) {
	data, err := json.Marshal(speechRequest{
		Model:          n.model,
		Input:          text,
		Voice:          n.voice,
		ResponseFormat: "mp3",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal speech request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/v1/audio/speech", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build speech request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	audio, err := n.do(req)
	if err != nil {
		return nil, fmt.Errorf("narrate: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("narrate: empty audio response")
	}
	return audio, nil
}
