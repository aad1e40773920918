package place

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekenddiaries/domain/core"
)

func sampleTable() *Table {
	return NewTable([]Place{
		{ID: "1", Name: "Sinhagad Fort", Category: "Nature & Outdoors", Subcategory: "Fort", BestTimeToVisit: "Early morning", DistanceKm: Km(35)},
		{ID: "2", Name: "Shaniwar Wada", Category: "Spiritual & Cultural", Subcategory: "Heritage", BestTimeToVisit: "Evening", Spooky: true, DistanceKm: Km(0)},
		{ID: "3", Name: "Pashan Lake", Category: "Nature & Outdoors", Subcategory: "Lake", BestTimeToVisit: "Sunset", DistanceKm: Km(12.5)},
		{ID: "4", Name: "Mystery Road", Category: "Offbeat & Mystery", Subcategory: "Road", BestTimeToVisit: "Night", Spooky: true},
		{ID: "5", Name: "Tamhini Ghat", Category: "Nature & Outdoors", Subcategory: "Ghat", BestTimeToVisit: "Monsoon", DistanceKm: Km(60)},
		{ID: "6", Name: "Unlabelled Spot", Category: "", Subcategory: "", BestTimeToVisit: ""},
	})
}

func ids(t *Table) []string {
	out := []string{}
	for _, p := range t.Places() {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_NoCategoriesReturnsNothing(t *testing.T) {
	res := Filter(sampleTable(), Criteria{MaxDistanceKm: Km(1000)})
	assert.Equal(t, OutcomeNoCategories, res.Outcome)
	assert.Equal(t, 0, res.Places.Len())

	res = Filter(NewTable(nil), Criteria{})
	assert.Equal(t, OutcomeNoCategories, res.Outcome)
}

func TestFilter_CategoryAndSubcategory(t *testing.T) {
	tbl := sampleTable()

	res := Filter(tbl, Criteria{Categories: NewSet("Nature & Outdoors")})
	assert.Equal(t, OutcomeMatched, res.Outcome)
	assert.Equal(t, []string{"1", "3", "5"}, ids(res.Places))

	res = Filter(tbl, Criteria{Categories: NewSet("Nature & Outdoors"), Subcategories: NewSet("Lake", "Ghat")})
	assert.Equal(t, []string{"3", "5"}, ids(res.Places))

	res = Filter(tbl, Criteria{Categories: NewSet("")})
	assert.Equal(t, []string{"6"}, ids(res.Places), "empty category is a valid value")
}

func TestFilter_DistanceBoundExcludesUnknownDistances(t *testing.T) {
	tbl := sampleTable()
	all := NewSet(tbl.Categories()...)

	unbounded := Filter(tbl, Criteria{Categories: all})
	assert.Equal(t, tbl.Len(), unbounded.Places.Len(), "no bound keeps rows without distance")

	max := tbl.MaxDistance()
	require.NotNil(t, max)
	assert.Equal(t, 60.0, *max)

	bounded := Filter(tbl, Criteria{Categories: all, MaxDistanceKm: max})
	assert.Equal(t, []string{"1", "2", "3", "5"}, ids(bounded.Places))
	for _, p := range bounded.Places.Places() {
		assert.True(t, p.HasDistance())
	}

	zero := Filter(tbl, Criteria{Categories: all, MaxDistanceKm: Km(0)})
	assert.Equal(t, []string{"2"}, ids(zero.Places))
}

func TestFilter_SpookyModes(t *testing.T) {
	tbl := sampleTable()
	all := NewSet(tbl.Categories()...)

	assert.Equal(t, []string{"2", "4"}, ids(Filter(tbl, Criteria{Categories: all, Spooky: SpookyOnly}).Places))
	assert.Equal(t, []string{"1", "3", "5", "6"}, ids(Filter(tbl, Criteria{Categories: all, Spooky: SpookyExclude}).Places))
	assert.Equal(t, tbl.Len(), Filter(tbl, Criteria{Categories: all, Spooky: SpookyAll}).Places.Len())
}

func TestFilter_NoMatchesIsDistinctFromNoCategories(t *testing.T) {
	res := Filter(sampleTable(), Criteria{Categories: NewSet("Urban & Fun")})
	assert.Equal(t, OutcomeNoMatches, res.Outcome)
	assert.Equal(t, 0, res.Places.Len())
}

func TestParseSpookyMode(t *testing.T) {
	tests := map[string]SpookyMode{
		"true":                   SpookyOnly,
		"TRUE":                   SpookyOnly,
		"spooky":                 SpookyOnly,
		"Only spooky places":     SpookyOnly,
		"false":                  SpookyExclude,
		"non_spooky":             SpookyExclude,
		"Only non-spooky places": SpookyExclude,
		"":                       SpookyAll,
		"maybe":                  SpookyAll,
		"All places":             SpookyAll,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseSpookyMode(in), in)
	}
}

func TestTable_Lookups(t *testing.T) {
	tbl := NewTable([]Place{{ID: "7", Name: "first"}, {ID: "7", Name: "second"}, {ID: "07", Name: "third"}})

	p, ok := tbl.FindByID("7")
	require.True(t, ok)
	assert.Equal(t, "first", p.Name)

	p, ok = tbl.FindByID("07")
	require.True(t, ok)
	assert.Equal(t, "third", p.Name)

	_, ok = tbl.FindByID(" 7")
	assert.False(t, ok, "lookup is an exact match")

	var nilTable *Table
	assert.Equal(t, 0, nilTable.Len())
	assert.Nil(t, nilTable.MaxDistance())
	assert.Empty(t, nilTable.Categories())
}

func TestTable_SubcategoriesFor(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t, []string{"Fort", "Ghat", "Lake"}, tbl.SubcategoriesFor(NewSet("Nature & Outdoors")))
	assert.Empty(t, tbl.SubcategoriesFor(NewSet()))
}

func TestIsWeekendCandidate(t *testing.T) {
	tests := []struct {
		name     string
		bestTime string
		distance *float64
		want     bool
	}{
		{"anytime hint", "Anytime", nil, true},
		{"uppercase substring", "LATE EVENING", Km(200), true},
		{"sunset inside a sentence", "Best around sunset in winter", nil, true},
		{"exactly at the radius", "Early morning", Km(30), true},
		{"just past the radius", "Early morning", Km(30.1), false},
		{"close with no hint", "", Km(5), true},
		{"far with no hint", "Monsoon", Km(60), false},
		{"unknown distance, no hint", "Night", nil, false},
		{"blank everything", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Place{ID: "x", BestTimeToVisit: tt.bestTime, DistanceKm: tt.distance}
			assert.Equal(t, tt.want, IsWeekendCandidate(p))
		})
	}
}

func TestWeekendPicks_PrefersCandidates(t *testing.T) {
	tbl := sampleTable()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		picks := WeekendPicks(tbl, 2, rng)
		require.Equal(t, 2, picks.Len())
		seen := map[string]bool{}
		for _, p := range picks.Places() {
			assert.Contains(t, []string{"2", "3"}, p.ID, "only the evening and sunset rows qualify")
			assert.False(t, seen[p.ID], "sampled without replacement")
			seen[p.ID] = true
		}
	}
}

func TestWeekendPicks_FallsBackToKnownDistances(t *testing.T) {
	// Candidates are 2 (evening) and 3 (sunset, 12.5km). Asking for 4 moves to
	// the pool of rows with a distance: 1, 2, 3, 5.
	tbl := sampleTable()
	picks := WeekendPicks(tbl, 4, rand.New(rand.NewSource(7)))
	require.Equal(t, 4, picks.Len())
	for _, p := range picks.Places() {
		assert.True(t, p.HasDistance())
	}
}

func TestWeekendPicks_FallsBackToWholeTable(t *testing.T) {
	tbl := sampleTable()
	picks := WeekendPicks(tbl, 5, rand.New(rand.NewSource(3)))
	assert.Equal(t, 5, picks.Len())

	picks = WeekendPicks(tbl, 100, rand.New(rand.NewSource(3)))
	assert.Equal(t, tbl.Len(), picks.Len())
}

func TestWeekendPicks_DegradesToTableSize(t *testing.T) {
	tbl := NewTable([]Place{{ID: "a"}, {ID: "b"}})
	picks := WeekendPicks(tbl, 3, nil)
	assert.Equal(t, 2, picks.Len())

	assert.Equal(t, 0, WeekendPicks(NewTable(nil), 3, nil).Len())
	assert.Equal(t, DefaultPickCount, WeekendPicks(sampleTable(), 0, nil).Len())
}

func TestSurpriseMe(t *testing.T) {
	_, err := SurpriseMe(NewTable(nil), nil)
	require.Error(t, err)
	assert.True(t, core.IsEmptyDataset(err))

	one := NewTable([]Place{{ID: "only"}})
	for i := 0; i < 20; i++ {
		p, err := SurpriseMe(one, nil)
		require.NoError(t, err)
		assert.Equal(t, "only", p.ID)
	}

	tbl := sampleTable()
	seen := map[string]bool{}
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 300; i++ {
		p, err := SurpriseMe(tbl, rng)
		require.NoError(t, err)
		seen[p.ID] = true
	}
	assert.Len(t, seen, tbl.Len(), "every row is reachable")
}

func TestPlaceJSON_NullDistance(t *testing.T) {
	b, err := json.Marshal(Place{ID: "x"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"distance_from_pune_km":null`)
	assert.Contains(t, string(b), `"spooky":false`)
	assert.Contains(t, string(b), `"map_link":""`)

	b, err = json.Marshal(Place{ID: "y", DistanceKm: Km(25.5)})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"distance_from_pune_km":25.5`)
}
