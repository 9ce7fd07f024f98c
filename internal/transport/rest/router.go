package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/hifz-planner/internal/config"
	"github.com/heartmarshall/hifz-planner/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Plans      *PlanHandler
	Health     *HealthHandler
	Tokens     middleware.TokenValidator
	Limiter    *middleware.RateLimiter
	CORS       config.CORSConfig
	RatePerMin int
	Logger     *slog.Logger
}

// NewRouter builds the HTTP routing tree.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.CORS(d.CORS))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(d.Tokens))

		r.Get("/paces", d.Plans.Paces)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Route("/plan", func(r chi.Router) {
				r.Get("/", d.Plans.GetPlan)
				r.Get("/assignment", d.Plans.Assignment)
				r.Get("/stats", d.Plans.Stats)

				// Only writes are rate limited.
				r.Group(func(r chi.Router) {
					r.Use(d.Limiter.Limit(d.RatePerMin))

					r.Post("/", d.Plans.CreatePlan)
					r.Delete("/", d.Plans.ResetPlan)
					r.Put("/{id}", d.Plans.ReplacePlan)
					r.Post("/memorize", d.Plans.Memorize)
					r.Post("/pages/{pageNumber}/revise", d.Plans.Revise)
				})
			})
		})
	})

	return r
}
