package pricing

import (
	"math"
	"testing"

	"pesquisa_precos/internal/domain/entities"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestComputeStatsEmptySet(t *testing.T) {
	t.Run("no sources", func(t *testing.T) {
		got := ComputeStats(nil)
		if got != (Stats{}) {
			t.Fatalf("expected zero stats, got %+v", got)
		}
	})

	t.Run("all sources excluded", func(t *testing.T) {
		sources := []entities.PriceSource{
			{UnitValue: 10, IncludedInCalculation: false},
			{UnitValue: 20, IncludedInCalculation: false},
		}
		got := ComputeStats(sources)
		if got != (Stats{}) {
			t.Fatalf("expected zero stats, got %+v", got)
		}
	})
}

func TestComputeStatsPopulation(t *testing.T) {
	sources := []entities.PriceSource{
		{UnitValue: 100, IncludedInCalculation: true},
		{UnitValue: 200, IncludedInCalculation: true},
		{UnitValue: 300, IncludedInCalculation: true},
		{UnitValue: 9999, IncludedInCalculation: false},
	}

	got := ComputeStats(sources)
	if got.IncludedCount != 3 {
		t.Fatalf("expected 3 included, got %d", got.IncludedCount)
	}
	if !approxEqual(got.Mean, 200) {
		t.Fatalf("expected mean 200, got %v", got.Mean)
	}
	if !approxEqual(got.StdDev, 81.65) {
		t.Fatalf("expected population stddev ~81.65, got %v", got.StdDev)
	}
	if !approxEqual(got.CoefficientOfVariation, 40.82) {
		t.Fatalf("expected CV ~40.82, got %v", got.CoefficientOfVariation)
	}
}

func TestComputeStatsZeroMean(t *testing.T) {
	sources := []entities.PriceSource{{UnitValue: 0, IncludedInCalculation: true}}
	got := ComputeStats(sources)
	if got.CoefficientOfVariation != 0 {
		t.Fatalf("expected CV 0 when mean is 0, got %v", got.CoefficientOfVariation)
	}
}

func TestMedian(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := Median(nil); got != nil {
			t.Fatalf("expected nil, got %v", *got)
		}
	})

	t.Run("odd count", func(t *testing.T) {
		got := Median([]float64{30, 10, 20})
		if got == nil || *got != 20 {
			t.Fatalf("expected 20, got %v", got)
		}
	})

	t.Run("even count", func(t *testing.T) {
		got := Median([]float64{40, 10, 20, 30})
		if got == nil || *got != 25 {
			t.Fatalf("expected 25, got %v", got)
		}
	})

	t.Run("input not mutated", func(t *testing.T) {
		in := []float64{3, 1, 2}
		_ = Median(in)
		if in[0] != 3 || in[1] != 1 || in[2] != 2 {
			t.Fatalf("input mutated: %v", in)
		}
	})
}
