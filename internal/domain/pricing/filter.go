package pricing

import (
	"math"
	"sort"
	"time"

	"pesquisa_precos/internal/domain/entities"
)

// SortMode orders filtered search results.

type SortMode string

const (
	SortRelevance    SortMode = "relevance"
	SortValueAsc     SortMode = "value_asc"
	SortValueDesc    SortMode = "value_desc"
	SortDistanceAsc  SortMode = "distance_asc"
	SortDistanceDesc SortMode = "distance_desc"
)

// UnitNotInformed is the sentinel unit applied to records the portal returns
// without a unit of measure, so they can still be selected by unit filters.
const UnitNotInformed = "not informed"

// PeriodAll disables the reference-date cutoff.
const PeriodAll = 0

// FilterState is the full client filter selection applied to a search result
// page. PeriodMonths is 0 (all) or a positive month count.

type FilterState struct {
	SelectedUnits []string
	MinValue      *float64
	MaxValue      *float64
	Sort          SortMode
	PeriodMonths  int
}

// Layouts accepted for portal reference dates, tried in order.
var referenceDateLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

// ApplyFilters runs the fixed filter/sort pipeline over portal search results:
// unit, min value, max value, period cutoff, then sort. It never mutates the
// input and is a pure function of (records, state, now), so re-applying it is
// idempotent. Records without a parseable reference date are dropped whenever
// a period cutoff is active; records without a value fail any value bound.
func ApplyFilters(records []entities.PriceRecord, state FilterState, now time.Time) []entities.PriceRecord {
	out := make([]entities.PriceRecord, 0, len(records))

	// Reference dates are day-granular, so the cutoff is truncated to
	// midnight to keep a record dated exactly N months ago.
	var cutoff time.Time
	if state.PeriodMonths > PeriodAll {
		c := now.AddDate(0, -state.PeriodMonths, 0)
		cutoff = time.Date(c.Year(), c.Month(), c.Day(), 0, 0, 0, 0, c.Location())
	}

	for _, r := range records {
		if !matchesUnit(r, state.SelectedUnits) {
			continue
		}
		if state.MinValue != nil && (r.UnitValue == nil || *r.UnitValue < *state.MinValue) {
			continue
		}
		if state.MaxValue != nil && (r.UnitValue == nil || *r.UnitValue > *state.MaxValue) {
			continue
		}
		if state.PeriodMonths > PeriodAll {
			ref, ok := parseReferenceDate(r.ReferenceDate)
			if !ok || ref.Before(cutoff) {
				continue
			}
		}
		out = append(out, r)
	}

	sortRecords(out, state.Sort)
	return out
}

func matchesUnit(r entities.PriceRecord, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	unit := r.Unit
	if unit == "" {
		unit = UnitNotInformed
	}
	for _, s := range selected {
		if s == unit {
			return true
		}
	}
	return false
}

func parseReferenceDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range referenceDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func sortRecords(records []entities.PriceRecord, mode SortMode) {
	switch mode {
	case SortValueAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return valueOrZero(records[i]) < valueOrZero(records[j])
		})
	case SortValueDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return valueOrZero(records[i]) > valueOrZero(records[j])
		})
	case SortDistanceAsc:
		// Missing distance sorts last.
		sort.SliceStable(records, func(i, j int) bool {
			return distanceOr(records[i], math.Inf(1)) < distanceOr(records[j], math.Inf(1))
		})
	case SortDistanceDesc:
		// Missing distance counts as zero, which also sorts last when descending.
		sort.SliceStable(records, func(i, j int) bool {
			return distanceOr(records[i], 0) > distanceOr(records[j], 0)
		})
	default:
		// relevance: keep portal order.
	}
}

func valueOrZero(r entities.PriceRecord) float64 {
	if r.UnitValue == nil {
		return 0
	}
	return *r.UnitValue
}

func distanceOr(r entities.PriceRecord, missing float64) float64 {
	if r.DistanceKM == nil {
		return missing
	}
	return *r.DistanceKM
}
