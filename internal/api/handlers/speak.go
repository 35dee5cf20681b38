package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/nikhilbhutani/airplanetts/internal/tts"
)

// Acknowledgment is returned by /speak when no synthesis backend is
// configured.
type Acknowledgment struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Voice string `json:"voice"`
	Note  string `json:"note"`
}

// SpeakOptions configure the stub endpoint.
type SpeakOptions struct {
	DefaultVoice string
	Note         string
	// NewID generates acknowledgment ids. Defaults to random UUIDs.
	NewID func() string
}

type SpeakHandler struct {
	provider tts.Provider // nil: stub mode
	opts     SpeakOptions
}

// NewSpeakHandler returns the /speak handler. A nil provider selects the
// stub mode that only acknowledges requests.
func NewSpeakHandler(provider tts.Provider, opts SpeakOptions) *SpeakHandler {
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &SpeakHandler{provider: provider, opts: opts}
}

type speakRequest struct {
	Text  *string `json:"text"`
	Voice *string `json:"voice"`
}

func (h *SpeakHandler) Speak(w http.ResponseWriter, r *http.Request) {
	var req speakRequest
	if err := decodeBody(r, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			writeError(w, http.StatusUnprocessableEntity, typeErr.Field+" must be a string")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Text == nil {
		writeError(w, http.StatusUnprocessableEntity, "text is required")
		return
	}

	voice := h.opts.DefaultVoice
	if req.Voice != nil {
		voice = *req.Voice
	}

	if h.provider == nil {
		writeJSON(w, http.StatusOK, Acknowledgment{
			ID:    h.opts.NewID(),
			Text:  *req.Text,
			Voice: voice,
			Note:  h.opts.Note,
		})
		return
	}

	res, err := h.provider.Synthesize(r.Context(), tts.SynthesisRequest{
		Text:  *req.Text,
		Voice: voice,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "speak synthesis failed", "provider", h.provider.Name(), "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	streamAudio(w, r, res)
}
