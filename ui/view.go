package ui

import (
	"fmt"
	"html/template"

	"weekenddiaries/domain/place"
	"weekenddiaries/internal/content"
	"weekenddiaries/internal/profiling"
)

// noValue is shown where a distance is unknown.
const noValue = "—"

type option struct {
	Value    string
	Label    string
	Selected bool
}

type metric struct {
	Label string
	Value string
}

type breakdownRow struct {
	Icon  string
	Name  string
	Count int
}

type cardView struct {
	ID          string
	Name        string
	Icon        string
	Category    string
	Subcategory string
	Description string
	Location    string
	BestTime    string
	Facts       string
	Rules       string
	Spooky      bool
	Distance    string
	MapLink     string
}

type resultsView struct {
	Count            int
	Metrics          []metric
	Categories       []breakdownRow
	TopSubcategories []profiling.ValueCount
	Cards            []cardView
}

type pageData struct {
	Error   string
	Sidebar sidebarImage

	Categories        []option
	Subcategories     []option
	ShowSubcategories bool
	SliderMax         int
	Distance          int
	SpookyOptions     []option

	// NoCategory and Results are mutually exclusive; Results has Count 0
	// when nothing matched.
	NoCategory bool
	Results    *resultsView

	WeekendPicks      []cardView
	SurpriseRequested bool
	Surprise          *cardView
	Tip               string
	SurpriseURL       template.URL
	TipURL            template.URL
	Today             string
}

func newCard(p place.Place) cardView {
	return cardView{
		ID:          p.ID,
		Name:        p.Name,
		Icon:        content.IconFor(p.Category),
		Category:    p.Category,
		Subcategory: p.Subcategory,
		Description: p.Description,
		Location:    p.Location,
		BestTime:    p.BestTimeToVisit,
		Facts:       p.Facts,
		Rules:       p.Rules,
		Spooky:      p.Spooky,
		Distance:    formatKm(p.DistanceKm),
		MapLink:     p.MapLink,
	}
}

func newCards(t *place.Table) []cardView {
	cards := make([]cardView, 0, t.Len())
	for _, p := range t.Places() {
		cards = append(cards, newCard(p))
	}
	return cards
}

func formatKm(v *float64) string {
	if v == nil {
		return noValue
	}
	return fmt.Sprintf("%.1f km", *v)
}

// newResults builds the metrics row, breakdowns and cards for a non-empty
// filter result.
func newResults(t *place.Table) (*resultsView, error) {
	summary, err := profiling.Summarize(t)
	if err != nil {
		return nil, err
	}

	r := &resultsView{
		Count: summary.TotalPlaces,
		Metrics: []metric{
			{Label: "Total Places", Value: fmt.Sprint(summary.TotalPlaces)},
			{Label: "Spooky Places", Value: fmt.Sprint(summary.SpookyPlaces)},
			{Label: "Avg Distance", Value: formatKm(summary.AvgDistance)},
			{Label: "Max Distance", Value: formatKm(summary.MaxDistance)},
		},
		TopSubcategories: profiling.TopN(summary.Subcategories, 10),
		Cards:            newCards(t),
	}
	for _, vc := range profiling.TopN(summary.Categories, 0) {
		r.Categories = append(r.Categories, breakdownRow{Icon: content.IconFor(vc.Value), Name: vc.Value, Count: vc.Count})
	}
	return r, nil
}
