package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterOptions carries the HTTP-level settings from config.Config.
type RouterOptions struct {
	AllowedOrigins  []string
	AuthRateLimit   int
	APIRateLimit    int
	RateLimitWindow time.Duration
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
}

func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(h.metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	if opts.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", opts.MetricsHandler)
	}
	r.Get("/docs/openapi.json", h.OpenAPI)

	r.With(h.Throttle("auth", opts.AuthRateLimit, opts.RateLimitWindow, ClientKey)).
		Post("/auth/token", h.IssueToken)

	r.Group(func(r chi.Router) {
		r.Use(h.AuthMiddleware)
		r.Use(h.Throttle("api", opts.APIRateLimit, opts.RateLimitWindow, PrincipalKey))

		r.Get("/leaderboard", h.GetLeaderboard)
		r.Get("/leaderboard/export", h.ExportLeaderboard)
		r.Get("/games", h.ListGames)

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.Post("/", h.CreatePlayer)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetPlayer)
				r.Put("/", h.UpdatePlayer)
				r.Patch("/", h.UpdatePlayer)
				r.Delete("/", h.DeletePlayer)
			})
		})
	})

	return r
}
