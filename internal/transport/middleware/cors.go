package middleware

import (
	"github.com/rs/cors"

	"github.com/heartmarshall/hifz-planner/internal/config"
)

// CORS returns middleware that handles CORS preflight and response headers.
// Credentials are never allowed together with a wildcard origin.
func CORS(cfg config.CORSConfig) Middleware {
	origins := cfg.Origins()
	wildcard := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			wildcard = true
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{"X-Request-Id", "Retry-After"},
		AllowCredentials: cfg.AllowCredentials && !wildcard,
		MaxAge:           cfg.MaxAge,
	})
	return c.Handler
}
