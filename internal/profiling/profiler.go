// Package profiling computes the descriptive numbers shown on the stats
// endpoint and the UI metrics row.
package profiling

import (
	"sort"

	"weekenddiaries/domain/place"
)

// ValueCount is one entry of a value_counts style breakdown.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Summary is the table-wide statistics block.
type Summary struct {
	TotalPlaces     int              `json:"total_places"`
	SpookyPlaces    int              `json:"spooky_places"`
	NonSpookyPlaces int              `json:"non_spooky_places"`
	Categories      map[string]int   `json:"categories"`
	Subcategories   map[string]int   `json:"subcategories"`
	BestTimes       map[string]int   `json:"best_times"`
	AvgDistance     *float64         `json:"avg_distance"`
	MaxDistance     *float64         `json:"max_distance"`
	MinDistance     *float64         `json:"min_distance"`
	Distance        *DistanceSummary `json:"distance"`
}

// Summarize profiles t. Distance fields stay nil when no row has a distance.
func Summarize(t *place.Table) (Summary, error) {
	s := Summary{
		TotalPlaces:   t.Len(),
		SpookyPlaces:  t.SpookyCount(),
		Categories:    map[string]int{},
		Subcategories: map[string]int{},
		BestTimes:     map[string]int{},
	}
	s.NonSpookyPlaces = s.TotalPlaces - s.SpookyPlaces

	for _, p := range t.Places() {
		s.Categories[p.Category]++
		s.Subcategories[p.Subcategory]++
		s.BestTimes[p.BestTimeToVisit]++
	}

	distance, err := SummarizeDistances(t.Distances())
	if err != nil {
		return Summary{}, err
	}
	if distance != nil {
		s.Distance = distance
		s.AvgDistance = &distance.Mean
		s.MaxDistance = &distance.Max
		s.MinDistance = &distance.Min
	}
	return s, nil
}

// TopN returns the n largest counts, ties broken by value. n <= 0 returns all.
func TopN(counts map[string]int, n int) []ValueCount {
	out := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, ValueCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
