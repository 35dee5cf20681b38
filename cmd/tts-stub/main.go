package main

import (
	"log/slog"
	"os"

	"github.com/nikhilbhutani/airplanetts/internal/api"
	"github.com/nikhilbhutani/airplanetts/internal/config"
	"github.com/nikhilbhutani/airplanetts/internal/tts"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger.With("service", "tts-stub"))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	provider, err := tts.New(cfg.Stub.Backend, tts.Options{
		OpenAI: tts.OpenAITTSConfig{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
		},
		Local: tts.LocalTTSConfig{
			PiperBinPath: cfg.Piper.BinPath,
			ModelPath:    cfg.Piper.Model,
		},
	})
	if err != nil {
		slog.Error("failed to create tts backend", "error", err)
		os.Exit(1)
	}
	if provider == nil {
		slog.Info("tts backend not connected, answering with stub acknowledgments")
	} else {
		slog.Info("tts backend selected", "backend", provider.Name())
	}
	if !cfg.IsProduction() {
		slog.Info("cors open to all origins", "env", cfg.Env)
	}

	router := api.NewRouter(cfg, provider, nil)
	if err := api.Serve(cfg.Addr(), router.Stub()); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
