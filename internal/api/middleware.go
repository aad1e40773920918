package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"weekenddiaries/domain/core"
	apperrors "weekenddiaries/internal/errors"
)

// RequestIDHeader carries the per-request id on responses.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a fresh id, or keeps the caller's.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = core.NewID().String()
		}
		c.Set("requestID", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// EdgeConfig controls the browser-facing wrappers around the API.
type EdgeConfig struct {
	AllowedOrigins []string
	// RateLimit is requests per window per client IP; 0 disables limiting.
	RateLimit       int
	RateLimitWindow time.Duration
}

// PublicHandler wraps the router with CORS and per-IP rate limiting for
// serving to browsers.
func (s *Server) PublicHandler(cfg EdgeConfig) http.Handler {
	var h http.Handler = s.router

	if cfg.RateLimit > 0 {
		window := cfg.RateLimitWindow
		if window <= 0 {
			window = time.Minute
		}
		h = httprate.Limit(cfg.RateLimit, window,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(apperrors.HTTPStatus(apperrors.CodeRateLimited))
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"success":   false,
					"error":     "Too many requests, please slow down",
					"code":      apperrors.CodeRateLimited,
					"timestamp": timestamp(),
				})
			}),
		)(h)
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})(h)
}
