package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const EnvProduction = "production"

type Config struct {
	Env    string
	Server ServerConfig
	Redis  RedisConfig
	Google GoogleConfig
	Stub   StubConfig
	OpenAI OpenAIConfig
	Piper  PiperConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type RedisConfig struct {
	Addr     string // empty disables the audio cache
	Password string
	DB       int
	CacheTTL time.Duration
}

// GoogleConfig drives the Explain-TTS gateway.
type GoogleConfig struct {
	CredentialsFile string
	LanguageCode    string
	VoiceName       string
	DefaultText     string
}

// StubConfig drives the local TTS stub. Backend "stub" answers with an
// acknowledgment; any other backend synthesizes real audio.
type StubConfig struct {
	Backend      string
	DefaultVoice string
	Note         string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type PiperConfig struct {
	BinPath string
	Model   string
}

var stubBackends = []string{"stub", "openai", "piper"}

func Load() (*Config, error) {
	port, err := getEnvInt("SERVER_PORT", 8000)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cacheTTL, err := getEnvDuration("TTS_CACHE_TTL", 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid TTS_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		Env: getEnv("ENV", ""),
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			CacheTTL: cacheTTL,
		},
		Google: GoogleConfig{
			CredentialsFile: getEnv("GOOGLE_TTS_CREDENTIALS_FILE", ""),
			LanguageCode:    getEnv("GOOGLE_TTS_LANGUAGE", "ja-JP"),
			VoiceName:       getEnv("GOOGLE_TTS_VOICE", "ja-JP-Standard-A"),
			DefaultText:     getEnv("TTS_DEFAULT_TEXT", "テスト音声です"),
		},
		Stub: StubConfig{
			Backend:      strings.ToLower(getEnv("STUB_BACKEND", "stub")),
			DefaultVoice: getEnv("STUB_DEFAULT_VOICE", "ja-JP"),
			Note:         "TTS stub response (no audio)",
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("TTS_OPENAI_BASE_URL", ""),
			Model:   getEnv("TTS_OPENAI_MODEL", ""),
		},
		Piper: PiperConfig{
			BinPath: getEnv("TTS_LOCAL_PIPER_BIN", "piper"),
			Model:   getEnv("TTS_LOCAL_PIPER_MODEL", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// IsProduction reports whether ENV selects production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// CacheEnabled reports whether a Redis address was configured.
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}

func (c *Config) Validate() error {
	var problems []string
	if !contains(stubBackends, c.Stub.Backend) {
		problems = append(problems, fmt.Sprintf("STUB_BACKEND must be one of %s, got %q", strings.Join(stubBackends, ", "), c.Stub.Backend))
	}
	if c.Stub.Backend == "openai" && c.OpenAI.APIKey == "" {
		problems = append(problems, "OPENAI_API_KEY is required when STUB_BACKEND=openai")
	}
	if c.Stub.Backend == "piper" && c.Piper.Model == "" {
		problems = append(problems, "TTS_LOCAL_PIPER_MODEL is required when STUB_BACKEND=piper")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("SERVER_PORT out of range: %d", c.Server.Port))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return time.ParseDuration(v)
}
