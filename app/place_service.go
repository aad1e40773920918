package app

import (
	"context"
	"fmt"

	"weekenddiaries/domain/core"
	"weekenddiaries/domain/place"
	"weekenddiaries/internal"
	"weekenddiaries/internal/content"
	"weekenddiaries/internal/profiling"
	"weekenddiaries/ports"
)

// PlaceService answers every read the UI, API and CLI make against the place
// table. It never mutates the table.
type PlaceService struct {
	source  ports.PlaceSource
	rngPort ports.RNGPort
	logger  *internal.Logger
}

// NewPlaceService creates a place service
func NewPlaceService(source ports.PlaceSource, rngPort ports.RNGPort, logger *internal.Logger) *PlaceService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &PlaceService{
		source:  source,
		rngPort: rngPort,
		logger:  logger.With("PlaceService"),
	}
}

// Table returns the sanitized place table.
func (s *PlaceService) Table(ctx context.Context) (*place.Table, error) {
	t, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error("load failed: %v", err)
		return nil, fmt.Errorf("failed to load places: %w", err)
	}
	return t, nil
}

// Search runs the filter engine. An empty result is not an error.
func (s *PlaceService) Search(ctx context.Context, criteria place.Criteria) (place.FilterResult, error) {
	t, err := s.Table(ctx)
	if err != nil {
		return place.FilterResult{}, err
	}
	result := place.Filter(t, criteria)
	s.logger.Debug("search categories=%v subcategories=%v spooky=%s -> %s (%d)",
		criteria.Categories.Values(), criteria.Subcategories.Values(), criteria.Spooky, result.Outcome, result.Places.Len())
	return result, nil
}

// WeekendPicks samples n short-trip suggestions. n <= 0 means the default.
func (s *PlaceService) WeekendPicks(ctx context.Context, n int) (*place.Table, error) {
	t, err := s.Table(ctx)
	if err != nil {
		return nil, err
	}
	return place.WeekendPicks(t, n, s.rngPort.Stream(ctx, "weekend")), nil
}

// Surprise returns one random place.
func (s *PlaceService) Surprise(ctx context.Context) (place.Place, error) {
	t, err := s.Table(ctx)
	if err != nil {
		return place.Place{}, err
	}
	p, err := place.SurpriseMe(t, s.rngPort.Stream(ctx, "surprise"))
	if err != nil {
		return place.Place{}, fmt.Errorf("surprise: %w", err)
	}
	return p, nil
}

// Get looks a place up by exact id.
func (s *PlaceService) Get(ctx context.Context, rawID string) (place.Place, error) {
	id, err := core.ParsePlaceID(rawID)
	if err != nil {
		return place.Place{}, core.NewNotFoundError("place", rawID)
	}
	t, err := s.Table(ctx)
	if err != nil {
		return place.Place{}, err
	}
	p, ok := t.FindByID(id.String())
	if !ok {
		return place.Place{}, core.NewNotFoundError("place", id.String())
	}
	return p, nil
}

// Categories lists the distinct categories, sorted.
func (s *PlaceService) Categories(ctx context.Context) ([]string, error) {
	t, err := s.Table(ctx)
	if err != nil {
		return nil, err
	}
	return t.Categories(), nil
}

// Subcategories lists the subcategories present under categories.
func (s *PlaceService) Subcategories(ctx context.Context, categories place.Set) ([]string, error) {
	t, err := s.Table(ctx)
	if err != nil {
		return nil, err
	}
	return t.SubcategoriesFor(categories), nil
}

// Stats profiles the whole table.
func (s *PlaceService) Stats(ctx context.Context) (profiling.Summary, error) {
	t, err := s.Table(ctx)
	if err != nil {
		return profiling.Summary{}, err
	}
	summary, err := profiling.Summarize(t)
	if err != nil {
		return profiling.Summary{}, fmt.Errorf("failed to summarize places: %w", err)
	}
	return summary, nil
}

// Tip returns a random secret tip from the deck for v.
func (s *PlaceService) Tip(ctx context.Context, v content.Variant) string {
	return content.RandomTip(s.rngPort.Stream(ctx, "tip"), v)
}
