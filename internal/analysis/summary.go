package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a sampled distribution with the statistics reported for
// every TEV component.
type Summary struct {
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Median float64 `json:"median"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
}

// Summarize computes mean, standard deviation and quartiles over samples.
// Std is the population estimate (divide by n), which matches the upstream
// pipeline's convention and stays defined for a single sample.
func Summarize(samples []float64) Summary {
	s := Summary{}
	if len(samples) == 0 {
		return s
	}
	s.Mean = stat.Mean(samples, nil)
	s.Std = stat.PopStdDev(samples, nil)

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)
	s.P25 = percentileSorted(sorted, 0.25)
	s.Median = percentileSorted(sorted, 0.50)
	s.P75 = percentileSorted(sorted, 0.75)
	return s
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
