package tts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/nikhilbhutani/airplanetts/internal/cache"
)

// AudioCache stores synthesized audio keyed by request fingerprint.
type AudioCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type cachedAudio struct {
	Audio       []byte `json:"audio"`
	ContentType string `json:"content_type"`
}

// CachedProvider serves repeated requests from an AudioCache and only
// calls the wrapped Provider on a miss. Cache failures are logged and
// otherwise ignored.
type CachedProvider struct {
	next  Provider
	cache AudioCache
	ttl   time.Duration
}

func NewCachedProvider(next Provider, c AudioCache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{next: next, cache: c, ttl: ttl}
}

func (p *CachedProvider) Name() string { return p.next.Name() }

func (p *CachedProvider) Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error) {
	key := CacheKey(p.next.Name(), req)

	var hit cachedAudio
	err := p.cache.Get(ctx, key, &hit)
	switch {
	case err == nil:
		return &SynthesisResult{Audio: hit.Audio, ContentType: hit.ContentType}, nil
	case !errors.Is(err, cache.ErrMiss):
		slog.Warn("tts cache read failed", "key", key, "error", err)
	}

	res, err := p.next.Synthesize(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, key, cachedAudio{Audio: res.Audio, ContentType: res.ContentType}, p.ttl); err != nil {
		slog.Warn("tts cache write failed", "key", key, "error", err)
	}
	return res, nil
}

// Close closes the wrapped provider when it holds resources.
func (p *CachedProvider) Close() error {
	if c, ok := p.next.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// CacheKey fingerprints everything that affects the produced audio.
func CacheKey(backend string, req SynthesisRequest) string {
	h := sha256.New()
	for _, part := range []string{backend, req.LanguageCode, req.Voice, req.Encoding, req.Text} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return "tts:audio:" + hex.EncodeToString(h.Sum(nil))
}
