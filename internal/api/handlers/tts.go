package handlers

import (
	"log/slog"
	"net/http"

	"github.com/nikhilbhutani/airplanetts/internal/tts"
)

// TTSDefaults are the fixed synthesis parameters of the explain gateway.
type TTSDefaults struct {
	Text         string
	LanguageCode string
	Voice        string
}

type TTSHandler struct {
	provider tts.Provider
	defaults TTSDefaults
}

func NewTTSHandler(provider tts.Provider, defaults TTSDefaults) *TTSHandler {
	return &TTSHandler{provider: provider, defaults: defaults}
}

type ttsRequest struct {
	Text *string `json:"text"`
}

// Synthesize relays the request to the provider and streams back MP3.
// Provider errors are returned as 500 without any audio.
func (h *TTSHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var body ttsRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text := h.defaults.Text
	if body.Text != nil {
		text = *body.Text
	}

	res, err := h.provider.Synthesize(r.Context(), tts.SynthesisRequest{
		Text:         text,
		Voice:        h.defaults.Voice,
		LanguageCode: h.defaults.LanguageCode,
		Encoding:     tts.EncodingMP3,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "tts synthesis failed", "provider", h.provider.Name(), "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	streamAudio(w, r, res)
}
