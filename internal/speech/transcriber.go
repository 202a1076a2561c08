package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
)

// HTTPTranscriber calls POST /v1/audio/transcriptions.
type HTTPTranscriber struct {
	client
}

func NewTranscriber(baseURL, apiKey, model string) *HTTPTranscriber {
	return &HTTPTranscriber{client: newClient(baseURL, apiKey, model)}
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads audio as a multipart form and returns the recognized text.
func (t *HTTPTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("model", t.model); err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}
	part, err := w.CreateFormFile("file", "answer.wav")
	if err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/v1/audio/transcriptions", &body)
	if err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	data, err := t.do(req)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	var result transcriptionResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode transcription response: %w", err)
	}
	text := strings.TrimSpace(result.Text)
	if text == "" {
		return "", ErrNoSpeech
	}
	return text, nil
}
