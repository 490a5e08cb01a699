package pricing

import (
	"math"
	"sort"

	"pesquisa_precos/internal/domain/entities"
)

// Stats summarizes the included subset of an item's sources.
//
// StdDev is the population standard deviation (divide by n): the included
// sources are the full population being described, not a sample of it.

type Stats struct {
	Mean                   float64 `json:"mean"`
	StdDev                 float64 `json:"std_dev"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
	IncludedCount          int     `json:"included_count"`
}

// ComputeStats aggregates the sources currently flagged as included.
// An empty included set is a valid "no data yet" state and yields zeros.
func ComputeStats(sources []entities.PriceSource) Stats {
	values := IncludedValues(sources)
	n := len(values)
	if n == 0 {
		return Stats{}
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	sqSum := 0.0
	for _, v := range values {
		d := v - mean
		sqSum += d * d
	}
	stdDev := math.Sqrt(sqSum / float64(n))

	cv := 0.0
	if mean != 0 {
		cv = stdDev / mean * 100
	}

	return Stats{
		Mean:                   mean,
		StdDev:                 stdDev,
		CoefficientOfVariation: cv,
		IncludedCount:          n,
	}
}

// IncludedValues extracts the unit values of the sources participating in the
// median computation, in input order.
func IncludedValues(sources []entities.PriceSource) []float64 {
	values := make([]float64, 0, len(sources))
	for _, s := range sources {
		if s.IncludedInCalculation {
			values = append(values, s.UnitValue)
		}
	}
	return values
}

// Median returns the authoritative central value for a set of unit values, or
// nil when the set is empty. The input slice is not mutated.
func Median(values []float64) *float64 {
	n := len(values)
	if n == 0 {
		return nil
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var m float64
	if n%2 == 1 {
		m = sorted[n/2]
	} else {
		m = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return &m
}
