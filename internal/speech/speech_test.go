package speech

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))
		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		audio, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, []byte("RIFF"), audio)

		_, _ = w.Write([]byte(`{"text":"  I led the migration.  "}`))
	}))
	defer srv.Close()

	text, err := NewTranscriber(srv.URL, "secret", "whisper-1").Transcribe(context.Background(), []byte("RIFF"))
	require.NoError(t, err)
	assert.Equal(t, "I led the migration.", text)
}

func TestTranscribe_NoSpeech(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text":""}`))
	}))
	defer srv.Close()

	_, err := NewTranscriber(srv.URL, "", "whisper-1").Transcribe(context.Background(), []byte("x"))
	assert.ErrorIs(t, err, ErrNoSpeech)
}

func TestTranscribe_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		http.Error(w, "bad audio", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := NewTranscriber(srv.URL, "", "whisper-1").Transcribe(context.Background(), []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestTranscribe_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewTranscriber(srv.URL, "", "whisper-1").Transcribe(ctx, []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNarrate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/speech", r.URL.Path)

		var req speechRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, speechRequest{Model: "tts-1", Input: "Tell me about yourself.", Voice: "alloy", ResponseFormat: "mp3"}, req)

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3audio"))
	}))
	defer srv.Close()

	audio, err := NewNarrator(srv.URL, "", "tts-1", "alloy").Narrate(context.Background(), "Tell me about yourself.")
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3audio"), audio)
}

func TestNarrate_EmptyAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	_, err := NewNarrator(srv.URL, "", "tts-1", "alloy").Narrate(context.Background(), "hi")
	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	assert.NoError(t, NewNarrator(srv.URL, "", "tts-1", "alloy").HealthCheck(context.Background()))

	srv.Close()
	assert.Error(t, NewTranscriber(srv.URL, "", "whisper-1").HealthCheck(context.Background()))
}
