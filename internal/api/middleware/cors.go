package middleware

import (
	"net/http"
	"time"

	"github.com/phrazzld/todolist-api/internal/config"
	"github.com/rs/cors"
)

// CORS allows browser calls from the configured origins. An empty origin list
// disables cross-origin access.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	if len(cfg.AllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type", TraceIDHeader},
		ExposedHeaders:   []string{TraceIDHeader, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           int((10 * time.Minute).Seconds()),
	})
	return c.Handler
}
