package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ENV", "SERVER_HOST", "SERVER_PORT",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "TTS_CACHE_TTL",
		"GOOGLE_TTS_CREDENTIALS_FILE", "GOOGLE_TTS_LANGUAGE", "GOOGLE_TTS_VOICE", "TTS_DEFAULT_TEXT",
		"STUB_BACKEND", "STUB_DEFAULT_VOICE",
		"OPENAI_API_KEY", "TTS_OPENAI_BASE_URL", "TTS_OPENAI_MODEL",
		"TTS_LOCAL_PIPER_BIN", "TTS_LOCAL_PIPER_MODEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.CacheEnabled())
	assert.Equal(t, 24*time.Hour, cfg.Redis.CacheTTL)
	assert.Equal(t, "ja-JP", cfg.Google.LanguageCode)
	assert.Equal(t, "ja-JP-Standard-A", cfg.Google.VoiceName)
	assert.Equal(t, "テスト音声です", cfg.Google.DefaultText)
	assert.Equal(t, "stub", cfg.Stub.Backend)
	assert.Equal(t, "ja-JP", cfg.Stub.DefaultVoice)
	assert.Equal(t, "TTS stub response (no audio)", cfg.Stub.Note)
	assert.Equal(t, "piper", cfg.Piper.BinPath)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("TTS_CACHE_TTL", "90m")
	t.Setenv("STUB_BACKEND", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 90*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, "openai", cfg.Stub.Backend)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"port not a number":   {"SERVER_PORT": "http"},
		"port out of range":   {"SERVER_PORT": "70000"},
		"redis db":            {"REDIS_DB": "zero"},
		"ttl":                 {"TTS_CACHE_TTL": "1 day"},
		"unknown backend":     {"STUB_BACKEND": "espeak"},
		"openai without key":  {"STUB_BACKEND": "openai"},
		"piper without model": {"STUB_BACKEND": "piper"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestIsProduction_ExactMatch(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.False(t, (&Config{Env: "Production"}).IsProduction())
	assert.False(t, (&Config{Env: "prod"}).IsProduction())
}
