package api

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"weekenddiaries/domain/place"
	"weekenddiaries/internal/content"
	apperrors "weekenddiaries/internal/errors"
)

func (s *Server) handleInfo(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{
		"message": "Weekend Diaries API - places around Pune",
		"version": "1.0.0",
		"endpoints": gin.H{
			"GET /api/places":         "Get all places (filters: category, subcategory, max_distance, spooky)",
			"GET /api/places/random":  "Get a random place",
			"GET /api/places/weekend": "Get weekend picks (n)",
			"GET /api/places/<id>":    "Get a specific place by ID",
			"GET /api/tips":           "Get a random secret travel tip",
			"GET /api/categories":     "Get all categories",
			"GET /api/stats":          "Get statistics about the places",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleListPlaces(c *gin.Context) {
	criteria, err := s.criteriaFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := s.places.Search(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"count":  result.Places.Len(),
		"places": result.Places.Places(),
	})
}

// criteriaFromQuery maps query parameters onto filter criteria. A missing
// category parameter selects every category present in the table.
func (s *Server) criteriaFromQuery(c *gin.Context) (place.Criteria, error) {
	criteria := place.Criteria{
		Subcategories: place.NewSet(c.QueryArray("subcategory")...),
		Spooky:        place.ParseSpookyMode(c.Query("spooky")),
	}

	if categories, ok := c.GetQueryArray("category"); ok {
		criteria.Categories = place.NewSet(categories...)
	} else {
		all, err := s.places.Categories(c.Request.Context())
		if err != nil {
			return place.Criteria{}, err
		}
		criteria.Categories = place.NewSet(all...)
	}

	if raw := strings.TrimSpace(c.Query("max_distance")); raw != "" {
		bound, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(bound) {
			return place.Criteria{}, apperrors.InvalidInput("max_distance must be a number")
		}
		criteria.MaxDistanceKm = &bound
	}

	return criteria, nil
}

func (s *Server) handleRandomPlace(c *gin.Context) {
	p, err := s.places.Surprise(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"place": p})
}

func (s *Server) handleWeekendPicks(c *gin.Context) {
	n := s.weekendPicks
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, apperrors.InvalidInput("n must be an integer"))
			return
		}
		n = parsed
	}

	picks, err := s.places.WeekendPicks(c.Request.Context(), n)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"count":  picks.Len(),
		"places": picks.Places(),
	})
}

func (s *Server) handleGetPlace(c *gin.Context) {
	p, err := s.places.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"place": p})
}

func (s *Server) handleTip(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"tip": s.places.Tip(c.Request.Context(), content.VariantAPI)})
}

func (s *Server) handleCategories(c *gin.Context) {
	categories, err := s.places.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	summary, err := s.places.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"stats": summary})
}
