package tts

import "context"

const (
	ContentTypeMP3 = "audio/mpeg"
	ContentTypeWAV = "audio/wav"
	ContentTypeOGG = "audio/ogg"
	ContentTypePCM = "audio/L16"

	EncodingMP3      = "mp3"
	EncodingLinear16 = "linear16"
	EncodingOggOpus  = "ogg_opus"
)

// SynthesisRequest holds the parameters for text-to-speech generation.
type SynthesisRequest struct {
	Text         string `json:"text"`
	Voice        string `json:"voice,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	Encoding     string `json:"encoding,omitempty"`
}

// SynthesisResult holds the generated audio and its content type.
type SynthesisResult struct {
	Audio       []byte
	ContentType string
}

// Provider is the interface for text-to-speech backends.
type Provider interface {
	Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error)
	Name() string
}
