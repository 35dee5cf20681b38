package tts

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhilbhutani/airplanetts/internal/cache"
)

// memCache is an in-memory AudioCache with the same miss semantics as
// the Redis cache.
type memCache struct {
	data    map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
	setCall int
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memCache) Get(ctx context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	b, ok := m.data[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(b, dest)
}

func (m *memCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.setCall++
	if m.setErr != nil {
		return m.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	m.ttls[key] = ttl
	return nil
}

type countingProvider struct {
	calls int
	err   error
}

func (p *countingProvider) Name() string { return "counting" }

func (p *countingProvider) Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &SynthesisResult{Audio: []byte("audio:" + req.Text), ContentType: ContentTypeMP3}, nil
}

func TestCachedProvider_HitAfterMiss(t *testing.T) {
	next := &countingProvider{}
	mc := newMemCache()
	p := NewCachedProvider(next, mc, time.Hour)
	req := SynthesisRequest{Text: "こんにちは", Voice: "ja-JP-Standard-A", LanguageCode: "ja-JP", Encoding: EncodingMP3}

	first, err := p.Synthesize(context.Background(), req)
	require.NoError(t, err)
	second, err := p.Synthesize(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, time.Hour, mc.ttls[CacheKey("counting", req)])
}

func TestCachedProvider_DistinctKeys(t *testing.T) {
	next := &countingProvider{}
	p := NewCachedProvider(next, newMemCache(), time.Hour)

	for _, req := range []SynthesisRequest{
		{Text: "a"},
		{Text: "a", Voice: "v"},
		{Text: "a", Encoding: EncodingLinear16},
		{Text: "b"},
	} {
		_, err := p.Synthesize(context.Background(), req)
		require.NoError(t, err)
	}
	assert.Equal(t, 4, next.calls)
}

func TestCachedProvider_CacheFailuresIgnored(t *testing.T) {
	next := &countingProvider{}
	mc := newMemCache()
	mc.getErr = errors.New("redis down")
	mc.setErr = errors.New("redis down")
	p := NewCachedProvider(next, mc, time.Hour)

	res, err := p.Synthesize(context.Background(), SynthesisRequest{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, []byte("audio:x"), res.Audio)
	assert.Equal(t, 1, mc.setCall)
}

func TestCachedProvider_ErrorsNotCached(t *testing.T) {
	next := &countingProvider{err: errors.New("quota")}
	mc := newMemCache()
	p := NewCachedProvider(next, mc, time.Hour)

	_, err := p.Synthesize(context.Background(), SynthesisRequest{Text: "x"})
	assert.Error(t, err)
	assert.Zero(t, mc.setCall)
	assert.Equal(t, "counting", p.Name())
}

func TestCachedProvider_ClosesInner(t *testing.T) {
	fc := &fakeSpeechClient{audio: []byte("a")}
	g, _ := newFakeGoogle(fc)
	p := NewCachedProvider(g, newMemCache(), time.Hour)

	_, err := p.Synthesize(context.Background(), SynthesisRequest{Text: "x"})
	require.NoError(t, err)
	require.NoError(t, p.Close())
	assert.True(t, fc.closed)

	assert.NoError(t, NewCachedProvider(&countingProvider{}, newMemCache(), 0).Close())
}

func TestCacheKey_Stable(t *testing.T) {
	req := SynthesisRequest{Text: "x", Voice: "v"}
	assert.Equal(t, CacheKey("g", req), CacheKey("g", req))
	assert.NotEqual(t, CacheKey("g", req), CacheKey("o", req))
	// field boundaries are not ambiguous
	assert.NotEqual(t,
		CacheKey("g", SynthesisRequest{Text: "ab", Voice: ""}),
		CacheKey("g", SynthesisRequest{Text: "b", Voice: "a"}))
}
