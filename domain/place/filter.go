package place

import "strings"

// SpookyMode selects rows by their spooky flag.
type SpookyMode int

const (
	SpookyAll SpookyMode = iota
	SpookyOnly
	SpookyExclude
)

func (m SpookyMode) String() string {
	switch m {
	case SpookyOnly:
		return "spooky"
	case SpookyExclude:
		return "non_spooky"
	default:
		return "all"
	}
}

// ParseSpookyMode accepts the UI's select values and labels as well as the
// API's true/false. Anything else is SpookyAll.
func ParseSpookyMode(s string) SpookyMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "spooky", "only", "only spooky places":
		return SpookyOnly
	case "false", "non_spooky", "non-spooky", "exclude", "only non-spooky places":
		return SpookyExclude
	default:
		return SpookyAll
	}
}

// Criteria are the user-chosen constraints of a search.
type Criteria struct {
	Categories    Set
	Subcategories Set
	// MaxDistanceKm is the distance bound. Nil means unbounded, in which case
	// rows without a distance are kept.
	MaxDistanceKm *float64
	Spooky        SpookyMode
}

// Outcome tells an empty result apart from a search that was never run.
type Outcome int

const (
	OutcomeMatched Outcome = iota
	OutcomeNoMatches
	OutcomeNoCategories
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoMatches:
		return "no_matches"
	case OutcomeNoCategories:
		return "no_categories"
	default:
		return "matched"
	}
}

// FilterResult is the matching subset of a table in original row order.
type FilterResult struct {
	Outcome Outcome
	Places  *Table
}

// Filter applies c to t. Selecting no category yields no results: the caller
// is expected to ask the user to pick at least one.
func Filter(t *Table, c Criteria) FilterResult {
	if len(c.Categories) == 0 {
		return FilterResult{Outcome: OutcomeNoCategories, Places: NewTable(nil)}
	}

	out := t.where(func(p Place) bool {
		if !c.Categories.Has(p.Category) {
			return false
		}
		if len(c.Subcategories) > 0 && !c.Subcategories.Has(p.Subcategory) {
			return false
		}
		if c.MaxDistanceKm != nil {
			if p.DistanceKm == nil || *p.DistanceKm > *c.MaxDistanceKm {
				return false
			}
		}
		switch c.Spooky {
		case SpookyOnly:
			return p.Spooky
		case SpookyExclude:
			return !p.Spooky
		}
		return true
	})

	if out.IsEmpty() {
		return FilterResult{Outcome: OutcomeNoMatches, Places: out}
	}
	return FilterResult{Outcome: OutcomeMatched, Places: out}
}
