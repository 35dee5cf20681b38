package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nikhilbhutani/airplanetts/internal/tts"
)

// maxBodyBytes bounds request bodies on the synthesis endpoints.
const maxBodyBytes = 1 << 20

// decodeBody decodes a JSON request body into dst. An empty body leaves
// dst untouched.
func decodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// streamAudio writes a synthesis result as the response body.
func streamAudio(w http.ResponseWriter, r *http.Request, res *tts.SynthesisResult) {
	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Audio)))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, bytes.NewReader(res.Audio)); err != nil {
		slog.WarnContext(r.Context(), "audio stream interrupted", "error", err)
	}
}
