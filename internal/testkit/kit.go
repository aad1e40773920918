// Package testkit provides fixtures shared by the package tests: sample
// places, deterministic random sources and stub place sources.
package testkit

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"weekenddiaries/domain/place"
)

// SamplePlaces returns a small table covering every filter branch: a null
// distance, an empty category, spooky and non-spooky rows.
func SamplePlaces() []place.Place {
	return []place.Place{
		{ID: "1", Name: "Sinhagad Fort", Category: "Adventure & Activities", Subcategory: "Forts & Treks",
			Description: "Historic hill **fortress**.", Location: "Sinhagad", BestTimeToVisit: "Early morning",
			Facts: "Tanaji's last battle", Rules: "Carry water", DistanceKm: place.Km(25), MapLink: "https://maps.google.com/?q=Sinhagad"},
		{ID: "2", Name: "Shaniwar Wada", Category: "Offbeat & Mystery", Subcategory: "Haunted",
			Description: "Haunted palace ruins.", Location: "Kasba Peth", BestTimeToVisit: "Evening",
			Spooky: true, DistanceKm: place.Km(0)},
		{ID: "3", Name: "Pawna Lake", Category: "Relaxation & Leisure", Subcategory: "Lakes",
			Description: "Lakeside camping.", Location: "Maval", BestTimeToVisit: "Sunset",
			DistanceKm: place.Km(60), MapLink: "https://maps.google.com/?q=Pawna"},
		{ID: "4", Name: "Mahabaleshwar", Category: "Nature & Outdoors", Subcategory: "Hill Stations",
			Description: "Strawberries and viewpoints.", Location: "Satara", BestTimeToVisit: "Winter",
			DistanceKm: place.Km(120)},
		{ID: "5", Name: "Secret Stepwell", Category: "", Subcategory: "",
			Description: "Nobody agrees where it is.", BestTimeToVisit: "Anytime"},
		{ID: "6", Name: "Lohagad Fort", Category: "Adventure & Activities", Subcategory: "Forts & Treks",
			Description: "Monsoon trek.", Location: "Lonavala", BestTimeToVisit: "Monsoon",
			Spooky: true, DistanceKm: place.Km(52.5)},
	}
}

// SampleTable wraps SamplePlaces.
func SampleTable() *place.Table {
	return place.NewTable(SamplePlaces())
}

// SampleCSV is a raw file with the quirks real exports carry: padded headers,
// distance units, mixed spooky tokens and a blank distance.
const SampleCSV = " id ,place_name,category,subcategory,description,location,best_time_to_visit,facts,rules,spooky,distance_from_pune_km,map_link\n" +
	"1,Sinhagad Fort,Adventure & Activities,Forts & Treks,Historic hill fortress.,Sinhagad,Early morning,,,no,25 km,https://maps.google.com/?q=Sinhagad\n" +
	"2,Shaniwar Wada,Offbeat & Mystery,Haunted,\"Haunted palace, ruins.\",Kasba Peth,Evening,,,Yes,0,\n" +
	"3,Pawna Lake,Relaxation & Leisure,Lakes,Lakeside camping.,Maval,Sunset,,,false,approx 60.5km,\n" +
	"4,Mahabaleshwar,Nature & Outdoors,Hill Stations,Viewpoints.,Satara,Winter,,,0,,\n"

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// SeededRNG hands out generators that replay the same sequence for a seed.
type SeededRNG struct {
	Seed int64
}

// Stream implements ports.RNGPort.
func (s SeededRNG) Stream(ctx context.Context, name string) *rand.Rand {
	return rand.New(rand.NewSource(s.Seed))
}

// StaticSource is a ports.PlaceSource returning a fixed table or error and
// counting calls.
type StaticSource struct {
	Table *place.Table
	Err   error
	calls atomic.Int32
}

// Load implements ports.PlaceSource.
func (s *StaticSource) Load(ctx context.Context) (*place.Table, error) {
	s.calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Table, nil
}

// Calls returns how many times Load ran.
func (s *StaticSource) Calls() int {
	return int(s.calls.Load())
}
