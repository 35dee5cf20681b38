package tts

import (
	"context"
	"fmt"
	"strings"
	"sync"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
)

// GoogleTTSConfig holds configuration for the Google Cloud TTS backend.
type GoogleTTSConfig struct {
	CredentialsFile string // empty: Application Default Credentials
	LanguageCode    string // default: "ja-JP"
	VoiceName       string // default: "ja-JP-Standard-A"
}

type speechClient interface {
	SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error)
	Close() error
}

// GoogleTTS synthesizes speech with Google Cloud Text-to-Speech.
//
// A single client is shared by all requests. It is created on the first
// call to Synthesize and released by Close. A failed creation is retried
// on the next call.
type GoogleTTS struct {
	cfg  GoogleTTSConfig
	dial func(ctx context.Context) (speechClient, error)

	mu     sync.Mutex
	client speechClient
}

// NewGoogleTTS returns a GoogleTTS. No connection is made until first use.
func NewGoogleTTS(cfg GoogleTTSConfig) *GoogleTTS {
	return newGoogleTTS(cfg, func(ctx context.Context) (speechClient, error) {
		var opts []option.ClientOption
		if cfg.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
		}
		return texttospeech.NewClient(ctx, opts...)
	})
}

func newGoogleTTS(cfg GoogleTTSConfig, dial func(ctx context.Context) (speechClient, error)) *GoogleTTS {
	if cfg.LanguageCode == "" {
		cfg.LanguageCode = "ja-JP"
	}
	if cfg.VoiceName == "" {
		cfg.VoiceName = "ja-JP-Standard-A"
	}
	return &GoogleTTS{cfg: cfg, dial: dial}
}

func (g *GoogleTTS) Name() string { return "google-tts" }

func (g *GoogleTTS) getClient() (speechClient, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}
	// The client outlives the request that triggers its creation.
	c, err := g.dial(context.Background())
	if err != nil {
		return nil, fmt.Errorf("create google tts client: %w", err)
	}
	g.client = c
	return c, nil
}

// Synthesize issues a single SynthesizeSpeech call. Voice and language
// fall back to the configured values when the request leaves them empty.
func (g *GoogleTTS) Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error) {
	encoding, contentType, err := googleEncoding(req.Encoding)
	if err != nil {
		return nil, err
	}

	client, err := g.getClient()
	if err != nil {
		return nil, err
	}

	lang := req.LanguageCode
	if lang == "" {
		lang = g.cfg.LanguageCode
	}
	voice := req.Voice
	if voice == "" {
		voice = g.cfg.VoiceName
	}

	resp, err := client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: req.Text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: lang,
			Name:         voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: encoding,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("google synthesize speech: %w", err)
	}

	return &SynthesisResult{
		Audio:       resp.GetAudioContent(),
		ContentType: contentType,
	}, nil
}

// Close releases the shared client, if one was created.
func (g *GoogleTTS) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client == nil {
		return nil
	}
	err := g.client.Close()
	g.client = nil
	return err
}

func googleEncoding(enc string) (texttospeechpb.AudioEncoding, string, error) {
	switch strings.ToLower(enc) {
	case "", EncodingMP3:
		return texttospeechpb.AudioEncoding_MP3, ContentTypeMP3, nil
	case EncodingLinear16:
		return texttospeechpb.AudioEncoding_LINEAR16, ContentTypeWAV, nil
	case EncodingOggOpus:
		return texttospeechpb.AudioEncoding_OGG_OPUS, ContentTypeOGG, nil
	}
	return texttospeechpb.AudioEncoding_AUDIO_ENCODING_UNSPECIFIED, "", fmt.Errorf("unsupported audio encoding %q", enc)
}
