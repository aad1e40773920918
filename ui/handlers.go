package ui

import (
	"html/template"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"weekenddiaries/domain/core"
	"weekenddiaries/domain/place"
	"weekenddiaries/internal/content"
)

// defaultSliderMax is used when no place has a known distance.
const defaultSliderMax = 100

var spookyChoices = []option{
	{Value: place.SpookyAll.String(), Label: "All places"},
	{Value: place.SpookyOnly.String(), Label: "Only spooky places"},
	{Value: place.SpookyExclude.String(), Label: "Only non-spooky places"},
}

// handleIndex renders the explorer page. The distance slider always bounds
// the search, so places with unknown distance only appear in weekend picks
// and surprises.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	data := pageData{
		Sidebar:           a.sidebar,
		SurpriseRequested: query.Get("surprise") == "1",
		SurpriseURL:       withFlag(query, "surprise"),
		TipURL:            withFlag(query, "tip"),
		Today:             core.Now().LongDate(),
	}

	table, err := a.places.Table(ctx)
	if err != nil {
		log.Printf("[UI] %v", err)
		data.Error = "We couldn't load the places list right now. Please check the data file and try again."
		a.renderTemplate(w, http.StatusServiceUnavailable, "index.html", data)
		return
	}

	selected := place.NewSet(query["category"]...)
	data.Categories = options(table.Categories(), selected)

	selectedSubs := place.Set{}
	if len(selected) > 0 {
		selectedSubs = place.NewSet(query["subcategory"]...)
		data.ShowSubcategories = true
		data.Subcategories = options(table.SubcategoriesFor(selected), selectedSubs)
	}

	data.SliderMax = sliderMax(table)
	data.Distance = parseDistance(query.Get("max_distance"), data.SliderMax)

	spooky := place.ParseSpookyMode(query.Get("spooky"))
	for _, o := range spookyChoices {
		o.Selected = o.Value == spooky.String()
		data.SpookyOptions = append(data.SpookyOptions, o)
	}

	bound := float64(data.Distance)
	result, err := a.places.Search(ctx, place.Criteria{
		Categories:    selected,
		Subcategories: selectedSubs,
		MaxDistanceKm: &bound,
		Spooky:        spooky,
	})
	if err != nil {
		a.renderError(w, &data, err)
		return
	}

	switch result.Outcome {
	case place.OutcomeNoCategories:
		data.NoCategory = true
	case place.OutcomeNoMatches:
		data.Results = &resultsView{}
	default:
		if data.Results, err = newResults(result.Places); err != nil {
			a.renderError(w, &data, err)
			return
		}
	}

	picks, err := a.places.WeekendPicks(ctx, a.config.WeekendPicks)
	if err != nil {
		a.renderError(w, &data, err)
		return
	}
	data.WeekendPicks = newCards(picks)

	if data.SurpriseRequested {
		if p, err := a.places.Surprise(ctx); err == nil {
			card := newCard(p)
			data.Surprise = &card
		} else if !core.IsEmptyDataset(err) {
			a.renderError(w, &data, err)
			return
		}
	}

	if query.Get("tip") == "1" {
		data.Tip = a.places.Tip(ctx, content.VariantUI)
	}

	a.renderTemplate(w, http.StatusOK, "index.html", data)
}

func (a *App) renderError(w http.ResponseWriter, data *pageData, err error) {
	log.Printf("[UI] %v", err)
	status := http.StatusInternalServerError
	data.Error = "Something went wrong while preparing your places."
	if core.IsDataUnavailable(err) {
		status = http.StatusServiceUnavailable
		data.Error = "We couldn't load the places list right now. Please check the data file and try again."
	}
	a.renderTemplate(w, status, "index.html", data)
}

func options(values []string, selected place.Set) []option {
	out := make([]option, 0, len(values))
	for _, v := range values {
		label := v
		if label == "" {
			label = "(uncategorized)"
		}
		out = append(out, option{Value: v, Label: label, Selected: selected.Has(v)})
	}
	return out
}

// sliderMax is the whole-km part of the largest known distance.
func sliderMax(t *place.Table) int {
	max := t.MaxDistance()
	if max == nil || int(*max) <= 0 {
		return defaultSliderMax
	}
	return int(*max)
}

// parseDistance reads the slider value, clamped to [0, max]. Anything
// unparsable means the slider default, which is max.
func parseDistance(raw string, max int) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return max
	}
	switch {
	case v < 0:
		return 0
	case v > float64(max):
		return max
	}
	return int(v)
}

// withFlag returns the current query string with flag=1 added, so buttons
// keep the sidebar state.
func withFlag(query url.Values, flag string) template.URL {
	q := url.Values{}
	for k, v := range query {
		if k == "surprise" || k == "tip" {
			continue
		}
		q[k] = append([]string(nil), v...)
	}
	q.Set(flag, "1")
	return template.URL("/?" + q.Encode())
}
