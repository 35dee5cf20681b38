package tts

import "fmt"

// Backend names accepted by New.
const (
	BackendStub   = "stub"
	BackendGoogle = "google"
	BackendOpenAI = "openai"
	BackendPiper  = "piper"
)

// Options carries the per-backend configuration used by New.
type Options struct {
	Google GoogleTTSConfig
	OpenAI OpenAITTSConfig
	Local  LocalTTSConfig
}

// New returns the Provider for backend. BackendStub yields a nil Provider:
// callers treat that as "synthesis not available".
func New(backend string, opts Options) (Provider, error) {
	switch backend {
	case BackendStub:
		return nil, nil
	case BackendGoogle:
		return NewGoogleTTS(opts.Google), nil
	case BackendOpenAI:
		if opts.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("openai backend requires OPENAI_API_KEY")
		}
		return NewOpenAITTS(opts.OpenAI), nil
	case BackendPiper:
		return NewLocalTTS(opts.Local), nil
	}
	return nil, fmt.Errorf("unknown tts backend %q", backend)
}
