package ui

import (
	"io/fs"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// staticMaxAge is how long browsers may cache the embedded assets.
const staticMaxAge = "public, max-age=3600"

// setupMiddleware configures chi middleware and the static file handler
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		log.Printf("[setupMiddleware] Error creating static filesystem: %v", err)
		return
	}
	a.router.With(cacheStatic).Handle("/static/*",
		http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
}

// cacheStatic marks responses as cacheable. Embedded assets only change with
// a new binary.
func cacheStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", staticMaxAge)
		next.ServeHTTP(w, r)
	})
}
