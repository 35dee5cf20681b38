package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAITTS_Synthesize(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/speech", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("ID3"))
	}))
	defer srv.Close()

	o := NewOpenAITTS(OpenAITTSConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1"})
	res, err := o.Synthesize(context.Background(), SynthesisRequest{Text: "こんにちは", Voice: "ja-JP"})
	require.NoError(t, err)

	assert.Equal(t, []byte("ID3"), res.Audio)
	assert.Equal(t, ContentTypeMP3, res.ContentType)
	assert.Equal(t, "tts-1", got["model"])
	assert.Equal(t, "こんにちは", got["input"])
	assert.Equal(t, "alloy", got["voice"])
	assert.Equal(t, "mp3", got["response_format"])
}

func TestOpenAITTS_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	o := NewOpenAITTS(OpenAITTSConfig{APIKey: "bad", BaseURL: srv.URL + "/v1", Model: "tts-1-hd"})
	_, err := o.Synthesize(context.Background(), SynthesisRequest{Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai speech")
}
