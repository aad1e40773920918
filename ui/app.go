package ui

import (
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"weekenddiaries/app"
	"weekenddiaries/domain/place"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the UI application
type App struct {
	router    *chi.Mux
	places    *app.PlaceService
	templates *template.Template
	config    Config
	sidebar   sidebarImage
}

// Config holds UI application configuration
type Config struct {
	// SidebarImage is shown at the top of the sidebar when the file exists.
	SidebarImage string
	// WeekendPicks is how many weekend suggestions each page shows.
	WeekendPicks int
}

// NewApp creates a new UI application
func NewApp(places *app.PlaceService, config Config) (*App, error) {
	if config.WeekendPicks <= 0 {
		config.WeekendPicks = place.DefaultPickCount
	}

	funcMap := template.FuncMap{
		"markdown": renderMarkdown,
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		places:    places,
		templates: templates,
		config:    config,
		sidebar:   loadSidebarImage(config.SidebarImage),
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
}

// Handler exposes the router for http.Server and tests.
func (a *App) Handler() http.Handler {
	return a.router
}

// sidebarImage is either a data URI or the name of the missing file.
type sidebarImage struct {
	DataURI template.URL
	Missing string
}

func loadSidebarImage(path string) sidebarImage {
	if path == "" {
		return sidebarImage{}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[UI] Sidebar image %s not loaded: %v", path, err)
		return sidebarImage{Missing: filepath.Base(path)}
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	// data URIs built from our own file are trusted
	return sidebarImage{
		DataURI: template.URL("data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(content)),
	}
}
