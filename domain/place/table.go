package place

import (
	"math"
	"sort"
)

// Table is an ordered, immutable collection of places. A nil *Table behaves
// like an empty one.
type Table struct {
	places []Place
	byID   map[string]int
}

// NewTable copies places into a new table. The first row wins when IDs repeat.
func NewTable(places []Place) *Table {
	t := &Table{
		places: make([]Place, len(places)),
		byID:   make(map[string]int, len(places)),
	}
	copy(t.places, places)
	for i, p := range t.places {
		if _, ok := t.byID[p.ID]; !ok {
			t.byID[p.ID] = i
		}
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.places)
}

// IsEmpty reports whether the table has no rows.
func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// At returns the row at index i.
func (t *Table) At(i int) Place {
	return t.places[i]
}

// Places returns a copy of the rows in table order.
func (t *Table) Places() []Place {
	if t == nil {
		return []Place{}
	}
	out := make([]Place, len(t.places))
	copy(out, t.places)
	return out
}

// FindByID does an exact match on the id string.
func (t *Table) FindByID(id string) (Place, bool) {
	if t == nil {
		return Place{}, false
	}
	i, ok := t.byID[id]
	if !ok {
		return Place{}, false
	}
	return t.places[i], true
}

// Categories returns the distinct categories, sorted. The empty category is a
// valid value and is included when present.
func (t *Table) Categories() []string {
	if t == nil {
		return []string{}
	}
	return distinct(t.places, func(p Place) string { return p.Category })
}

// SubcategoriesFor returns the sorted distinct subcategories of rows whose
// category is in categories.
func (t *Table) SubcategoriesFor(categories Set) []string {
	if t == nil || len(categories) == 0 {
		return []string{}
	}
	var rows []Place
	for _, p := range t.places {
		if categories.Has(p.Category) {
			rows = append(rows, p)
		}
	}
	return distinct(rows, func(p Place) string { return p.Subcategory })
}

// Distances returns the known distances in table order.
func (t *Table) Distances() []float64 {
	if t == nil {
		return nil
	}
	out := make([]float64, 0, len(t.places))
	for _, p := range t.places {
		if p.DistanceKm != nil {
			out = append(out, *p.DistanceKm)
		}
	}
	return out
}

// MaxDistance returns the largest known distance, or nil when no row has one.
func (t *Table) MaxDistance() *float64 {
	ds := t.Distances()
	if len(ds) == 0 {
		return nil
	}
	max := math.Inf(-1)
	for _, d := range ds {
		if d > max {
			max = d
		}
	}
	return &max
}

// SpookyCount counts rows flagged spooky.
func (t *Table) SpookyCount() int {
	n := 0
	for i := 0; i < t.Len(); i++ {
		if t.places[i].Spooky {
			n++
		}
	}
	return n
}

func (t *Table) where(keep func(Place) bool) *Table {
	out := make([]Place, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if keep(t.places[i]) {
			out = append(out, t.places[i])
		}
	}
	return NewTable(out)
}

func distinct(rows []Place, key func(Place) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range rows {
		k := key(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Set is a string set used for category and subcategory constraints.
type Set map[string]struct{}

// NewSet builds a set from values.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Values returns the members sorted.
func (s Set) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
