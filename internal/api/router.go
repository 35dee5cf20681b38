package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/nikhilbhutani/airplanetts/internal/api/handlers"
	"github.com/nikhilbhutani/airplanetts/internal/api/middleware"
	"github.com/nikhilbhutani/airplanetts/internal/config"
	"github.com/nikhilbhutani/airplanetts/internal/tts"
)

// Router assembles the HTTP surface of either service.
type Router struct {
	mux      *chi.Mux
	cfg      *config.Config
	provider tts.Provider
	checks   map[string]handlers.Pinger
}

// NewRouter creates a Router. provider may be nil for the stub service;
// checks are the dependencies probed by /readyz.
func NewRouter(cfg *config.Config, provider tts.Provider, checks map[string]handlers.Pinger) *Router {
	return &Router{
		mux:      chi.NewRouter(),
		cfg:      cfg,
		provider: provider,
		checks:   checks,
	}
}

func (rt *Router) base() chi.Router {
	r := rt.mux
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	return r
}

// Gateway wires the Explain-TTS gateway routes.
func (rt *Router) Gateway() http.Handler {
	r := rt.base()

	health := handlers.NewHealthHandler(rt.checks)
	r.Get("/health", health.Health)
	r.Get("/readyz", health.Readyz)

	ttsH := handlers.NewTTSHandler(rt.provider, handlers.TTSDefaults{
		Text:         rt.cfg.Google.DefaultText,
		LanguageCode: rt.cfg.Google.LanguageCode,
		Voice:        rt.cfg.Google.VoiceName,
	})
	r.Post("/tts", ttsH.Synthesize)

	return r
}

// Stub wires the local TTS stub routes. Outside production every origin
// is allowed.
func (rt *Router) Stub() http.Handler {
	r := rt.base()
	if !rt.cfg.IsProduction() {
		r.Use(middleware.CORS([]string{"*"}))
	}

	health := handlers.NewHealthHandler(rt.checks)
	r.Get("/health", health.Health)

	speakH := handlers.NewSpeakHandler(rt.provider, handlers.SpeakOptions{
		DefaultVoice: rt.cfg.Stub.DefaultVoice,
		Note:         rt.cfg.Stub.Note,
	})
	r.Post("/speak", speakH.Speak)

	return r
}
