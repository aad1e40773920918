package profiling

import (
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// DistanceSummary describes the known distances of a table, in km.
type DistanceSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	P90    float64 `json:"p90"`
}

// SummarizeDistances returns nil when data is empty.
func SummarizeDistances(data []float64) (*DistanceSummary, error) {
	if len(data) == 0 {
		return nil, nil
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}

	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return nil, err
	}

	min, err := stats.Min(data)
	if err != nil {
		return nil, err
	}

	max, err := stats.Max(data)
	if err != nil {
		return nil, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return nil, err
	}

	// stat.Quantile needs sorted input
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	p90 := stat.Quantile(0.9, stat.Empirical, sorted, nil)

	return &DistanceSummary{
		Count:  len(data),
		Mean:   mean,
		Min:    min,
		Max:    max,
		Median: median,
		StdDev: stdDev,
		P90:    p90,
	}, nil
}
