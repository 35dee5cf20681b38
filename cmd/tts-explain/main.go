package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nikhilbhutani/airplanetts/internal/api"
	"github.com/nikhilbhutani/airplanetts/internal/api/handlers"
	"github.com/nikhilbhutani/airplanetts/internal/cache"
	"github.com/nikhilbhutani/airplanetts/internal/config"
	"github.com/nikhilbhutani/airplanetts/internal/tts"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger.With("service", "tts-explain"))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// One Google client for the whole process, created on first use.
	google := tts.NewGoogleTTS(tts.GoogleTTSConfig{
		CredentialsFile: cfg.Google.CredentialsFile,
		LanguageCode:    cfg.Google.LanguageCode,
		VoiceName:       cfg.Google.VoiceName,
	})
	defer func() {
		if err := google.Close(); err != nil {
			slog.Warn("closing google tts client", "error", err)
		}
	}()

	var provider tts.Provider = google
	checks := map[string]handlers.Pinger{}

	// Redis audio cache (optional)
	if cfg.CacheEnabled() {
		rdb := cache.NewClient(cache.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		audioCache := cache.NewCache(rdb)
		if err := audioCache.Ping(context.Background()); err != nil {
			slog.Warn("redis unavailable, running without cache", "error", err)
		} else {
			provider = tts.NewCachedProvider(google, audioCache, cfg.Redis.CacheTTL)
			checks["redis"] = audioCache
		}
	}

	router := api.NewRouter(cfg, provider, checks)
	if err := api.Serve(cfg.Addr(), router.Gateway()); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
