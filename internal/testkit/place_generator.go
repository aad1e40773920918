package testkit

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"weekenddiaries/domain/place"
)

// PlaceGeneratorConfig configures synthetic place tables
type PlaceGeneratorConfig struct {
	Count            int     `json:"count"`
	MaxDistanceKm    float64 `json:"max_distance_km"`
	NullDistanceRate float64 `json:"null_distance_rate"`
	SpookyRate       float64 `json:"spooky_rate"`
	Seed             int64   `json:"seed"`
}

// DefaultPlaceGeneratorConfig returns a few hundred rows, the size the
// service is meant for.
func DefaultPlaceGeneratorConfig() PlaceGeneratorConfig {
	return PlaceGeneratorConfig{
		Count:            300,
		MaxDistanceKm:    250,
		NullDistanceRate: 0.1,
		SpookyRate:       0.15,
		Seed:             42,
	}
}

var (
	generatorCategories = map[string][]string{
		"Nature & Outdoors":            {"Waterfalls", "Hill Stations", "Valleys"},
		"Spiritual & Cultural":         {"Temples", "Caves"},
		"Relaxation & Leisure":         {"Lakes", "Resorts"},
		"Urban & Fun":                  {"Malls", "Cafes"},
		"Adventure & Activities":       {"Forts & Treks", "Paragliding"},
		"Offbeat & Mystery":            {"Haunted", "Ruins"},
		"Instagrammable / Photo Spots": {"Viewpoints"},
	}
	generatorTimes = []string{"Anytime", "Evening", "Sunset", "Monsoon", "Winter", "Early morning"}
)

// PlaceGenerator produces reproducible place tables for tests.
type PlaceGenerator struct {
	config PlaceGeneratorConfig
	rng    *rand.Rand
}

// NewPlaceGenerator creates a generator seeded from config
func NewPlaceGenerator(config PlaceGeneratorConfig) *PlaceGenerator {
	return &PlaceGenerator{config: config, rng: rand.New(rand.NewSource(config.Seed))}
}

// GeneratePlaces returns Count sanitized places.
func (g *PlaceGenerator) GeneratePlaces() []place.Place {
	categories := make([]string, 0, len(generatorCategories))
	for c := range generatorCategories {
		categories = append(categories, c)
	}
	// map order is random; sort for reproducibility
	sort.Strings(categories)

	places := make([]place.Place, g.config.Count)
	for i := range places {
		category := categories[g.rng.Intn(len(categories))]
		subs := generatorCategories[category]
		p := place.Place{
			ID:              strconv.Itoa(i + 1),
			Name:            fmt.Sprintf("Place %03d", i+1),
			Category:        category,
			Subcategory:     subs[g.rng.Intn(len(subs))],
			Description:     "Generated place.",
			Location:        "Pune district",
			BestTimeToVisit: generatorTimes[g.rng.Intn(len(generatorTimes))],
			Spooky:          g.rng.Float64() < g.config.SpookyRate,
		}
		if g.rng.Float64() >= g.config.NullDistanceRate {
			d := float64(int(g.rng.Float64()*g.config.MaxDistanceKm*10)) / 10
			p.DistanceKm = &d
		}
		places[i] = p
	}
	return places
}

// GenerateCSV renders places the way a raw export would: distances with a
// unit suffix and spooky as yes/no.
func GenerateCSV(places []place.Place) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write(place.RequiredColumns)
	for _, p := range places {
		distance := ""
		if p.DistanceKm != nil {
			distance = strconv.FormatFloat(*p.DistanceKm, 'f', -1, 64) + " km"
		}
		spooky := "no"
		if p.Spooky {
			spooky = "yes"
		}
		_ = w.Write([]string{
			p.Name, p.Category, p.Subcategory, p.Description, p.Location,
			p.BestTimeToVisit, p.Facts, p.Rules, spooky, distance, p.ID, p.MapLink,
		})
	}
	w.Flush()
	return b.String()
}
