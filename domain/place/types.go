// Package place holds the fixed place schema and the read-only table the
// filter engine and selection policies operate on.
package place

// Source column names. The JSON field names of Place mirror them.
const (
	ColID              = "id"
	ColName            = "place_name"
	ColCategory        = "category"
	ColSubcategory     = "subcategory"
	ColDescription     = "description"
	ColLocation        = "location"
	ColBestTimeToVisit = "best_time_to_visit"
	ColFacts           = "facts"
	ColRules           = "rules"
	ColSpooky          = "spooky"
	ColDistanceKm      = "distance_from_pune_km"
	ColMapLink         = "map_link"
)

// RequiredColumns is the fixed schema every loaded table is normalised to.
var RequiredColumns = []string{
	ColName, ColCategory, ColSubcategory, ColDescription, ColLocation,
	ColBestTimeToVisit, ColFacts, ColRules, ColSpooky,
	ColDistanceKm, ColID, ColMapLink,
}

// TextColumns are filled with "" when the source value is missing.
var TextColumns = []string{
	ColBestTimeToVisit, ColCategory, ColSubcategory, ColDescription,
	ColLocation, ColFacts, ColRules, ColName, ColMapLink,
}

// Place is one sanitized point of interest.
type Place struct {
	ID              string   `json:"id"`
	Name            string   `json:"place_name"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	BestTimeToVisit string   `json:"best_time_to_visit"`
	Facts           string   `json:"facts"`
	Rules           string   `json:"rules"`
	Spooky          bool     `json:"spooky"`
	DistanceKm      *float64 `json:"distance_from_pune_km"`
	MapLink         string   `json:"map_link"`
}

// HasDistance reports whether the source carried a parsable distance.
func (p Place) HasDistance() bool {
	return p.DistanceKm != nil
}

// DistanceOr returns the distance or fallback when it is unknown.
func (p Place) DistanceOr(fallback float64) float64 {
	if p.DistanceKm == nil {
		return fallback
	}
	return *p.DistanceKm
}

// Km is a small helper for building distances in literals and tests.
func Km(v float64) *float64 {
	return &v
}
