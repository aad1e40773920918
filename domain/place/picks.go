package place

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"weekenddiaries/domain/core"
)

// DefaultPickCount is the weekend pick sample size used when callers pass n <= 0.
const DefaultPickCount = 3

const weekendRadiusKm = 30

var weekendTimeHints = []string{"anytime", "evening", "sunset"}

// IsWeekendCandidate reports whether p has flexible visiting hours or lies
// within the weekend radius. Unknown distances count as infinitely far.
func IsWeekendCandidate(p Place) bool {
	best := strings.ToLower(p.BestTimeToVisit)
	for _, hint := range weekendTimeHints {
		if strings.Contains(best, hint) {
			return true
		}
	}
	return p.DistanceOr(math.Inf(1)) <= weekendRadiusKm
}

// WeekendPicks samples n rows without replacement. It prefers weekend
// candidates, then rows with a known distance, then the whole table, so the
// result is only empty when t is.
func WeekendPicks(t *Table, n int, rng *rand.Rand) *Table {
	if n <= 0 {
		n = DefaultPickCount
	}
	rng = orFresh(rng)

	pool := t.where(IsWeekendCandidate)
	if pool.Len() >= n {
		return NewTable(sample(pool.places, n, rng))
	}

	withDistance := t.where(Place.HasDistance)
	if withDistance.Len() >= n {
		return NewTable(sample(withDistance.places, n, rng))
	}

	if t.Len() < n {
		n = t.Len()
	}
	if n == 0 {
		return NewTable(nil)
	}
	return NewTable(sample(t.places, n, rng))
}

// SurpriseMe returns one uniformly random row.
func SurpriseMe(t *Table, rng *rand.Rand) (Place, error) {
	if t.IsEmpty() {
		return Place{}, fmt.Errorf("surprise me: %w", core.ErrEmptyDataset)
	}
	rng = orFresh(rng)
	return t.places[rng.Intn(t.Len())], nil
}

// sample draws n distinct rows with a partial Fisher-Yates shuffle over indices.
func sample(rows []Place, n int, rng *rand.Rand) []Place {
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	out := make([]Place, 0, n)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out = append(out, rows[idx[i]])
	}
	return out
}

func orFresh(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
