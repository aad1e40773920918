package dataset

import (
	"fmt"

	"weekenddiaries/adapters/datareadiness/coercer"
	"weekenddiaries/adapters/excel"
	"weekenddiaries/domain/place"
)

// synthesizedIDNameRunes is how much of place_name a generated id keeps.
const synthesizedIDNameRunes = 20

// Sanitizer turns a raw table into the fixed place schema.
type Sanitizer struct {
	coercer *coercer.TypeCoercer
}

// NewSanitizer creates a sanitizer with the default coercion rules
func NewSanitizer() *Sanitizer {
	return &Sanitizer{coercer: coercer.NewTypeCoercer(coercer.DefaultCoercionConfig())}
}

// Sanitize applies column defaults, value coercion and id synthesis.
// Missing columns behave as if every cell were empty.
func (s *Sanitizer) Sanitize(raw *excel.RawTable) *place.Table {
	if raw == nil {
		return place.NewTable(nil)
	}

	keepIDs := hasAnyValue(raw, place.ColID)
	places := make([]place.Place, len(raw.Rows))
	for i, row := range raw.Rows {
		p := place.Place{
			Name:            s.coercer.Text(row[place.ColName]),
			Category:        s.coercer.Text(row[place.ColCategory]),
			Subcategory:     s.coercer.Text(row[place.ColSubcategory]),
			Description:     s.coercer.Text(row[place.ColDescription]),
			Location:        s.coercer.Text(row[place.ColLocation]),
			BestTimeToVisit: s.coercer.Text(row[place.ColBestTimeToVisit]),
			Facts:           s.coercer.Text(row[place.ColFacts]),
			Rules:           s.coercer.Text(row[place.ColRules]),
			Spooky:          s.coercer.Bool(row[place.ColSpooky]),
			DistanceKm:      s.coercer.Distance(row[place.ColDistanceKm]),
			MapLink:         s.coercer.Text(row[place.ColMapLink]),
		}
		if keepIDs {
			p.ID = s.coercer.Text(row[place.ColID])
		} else {
			p.ID = synthesizeID(p.Name, i)
		}
		places[i] = p
	}
	return place.NewTable(places)
}

// hasAnyValue reports whether column exists and carries at least one value.
func hasAnyValue(raw *excel.RawTable, column string) bool {
	if !raw.HasColumn(column) {
		return false
	}
	for _, row := range raw.Rows {
		if row[column] != "" {
			return true
		}
	}
	return false
}

func synthesizeID(name string, index int) string {
	runes := []rune(name)
	if len(runes) > synthesizedIDNameRunes {
		runes = runes[:synthesizedIDNameRunes]
	}
	return fmt.Sprintf("%s_%d", string(runes), index)
}
