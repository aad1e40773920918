// Package api serves the place table as a JSON REST API.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weekenddiaries/app"
	"weekenddiaries/domain/place"
)

// Server represents the JSON API server
type Server struct {
	router       *gin.Engine
	places       *app.PlaceService
	weekendPicks int
}

// NewServer creates the API server and registers its routes. weekendPicks is
// the default n of /api/places/weekend.
func NewServer(places *app.PlaceService, weekendPicks int) *Server {
	if weekendPicks <= 0 {
		weekendPicks = place.DefaultPickCount
	}
	s := &Server{
		router:       gin.Default(),
		places:       places,
		weekendPicks: weekendPicks,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(RequestID())

	s.router.GET("/", s.handleInfo)
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.GET("/places", s.handleListPlaces)
		api.GET("/places/random", s.handleRandomPlace)
		api.GET("/places/weekend", s.handleWeekendPicks)
		api.GET("/places/:id", s.handleGetPlace)
		api.GET("/tips", s.handleTip)
		api.GET("/categories", s.handleCategories)
		api.GET("/stats", s.handleStats)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success":   false,
			"error":     "Endpoint not found",
			"timestamp": timestamp(),
		})
	})
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
