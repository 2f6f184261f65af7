package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/NexaiGuy/nexai-website/internal/content"
	"github.com/NexaiGuy/nexai-website/internal/dispatch"
	httpmiddleware "github.com/NexaiGuy/nexai-website/internal/http/middleware"
	"github.com/NexaiGuy/nexai-website/internal/wizard"
	"github.com/NexaiGuy/nexai-website/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	WizardHandler      *wizard.Handler
	DispatchHandler    *dispatch.Handler
	ContentHandler     *content.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Per-IP rate limiting on the dispatch endpoint. Zero disables it.
	RateLimitPerSec float64
	RateLimitBurst  int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.DispatchHandler != nil {
			sendEmails := api.With()
			if cfg.RateLimitPerSec > 0 {
				sendEmails = api.With(httpmiddleware.RateLimit(cfg.RateLimitPerSec, cfg.RateLimitBurst))
			}
			sendEmails.Post("/send-emails", cfg.DispatchHandler.SendEmails)
		}
		if cfg.ContentHandler != nil {
			api.Get("/services", cfg.ContentHandler.ListServices)
			api.Get("/portfolio", cfg.ContentHandler.ListPortfolio)
		}
	})

	if cfg.WizardHandler != nil {
		r.Mount("/wizard", cfg.WizardHandler.Routes())
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
