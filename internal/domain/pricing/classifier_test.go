package pricing

import (
	"strings"
	"testing"
)

func TestClassifyBands(t *testing.T) {
	cases := []struct {
		name     string
		value    float64
		center   float64
		category DeviationCategory
		severity Severity
	}{
		{name: "exact center", value: 100, center: 100, category: CategoryValid, severity: SeveritySuccess},
		{name: "upper valid boundary", value: 119.99, center: 100, category: CategoryValid, severity: SeveritySuccess},
		{name: "elevated lower boundary inclusive", value: 120, center: 100, category: CategoryElevated, severity: SeverityWarning},
		{name: "elevated mid band", value: 150, center: 100, category: CategoryElevated, severity: SeverityWarning},
		{name: "excessive boundary inclusive", value: 170, center: 100, category: CategoryExcessive, severity: SeverityDestructive},
		{name: "excessive far above", value: 500, center: 100, category: CategoryExcessive, severity: SeverityDestructive},
		{name: "negative valid boundary", value: 80, center: 100, category: CategoryValid, severity: SeveritySuccess},
		{name: "negative mid band is inexequible", value: 50, center: 100, category: CategoryInexequible, severity: SeverityDestructive},
		{name: "inexequible boundary inclusive", value: 30, center: 100, category: CategoryInexequible, severity: SeverityDestructive},
		{name: "far below", value: 1, center: 100, category: CategoryInexequible, severity: SeverityDestructive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.value, tc.center)
			if got.Category != tc.category {
				t.Fatalf("expected category %s, got %s (pct=%.2f)", tc.category, got.Category, got.DeviationPct)
			}
			if got.Severity != tc.severity {
				t.Fatalf("expected severity %s, got %s", tc.severity, got.Severity)
			}
		})
	}
}

func TestClassifyZeroCenter(t *testing.T) {
	for _, value := range []float64{0, 1, -50, 1e9} {
		got := Classify(value, 0)
		if got.Category != CategoryUndefined {
			t.Fatalf("value %v: expected undefined category, got %s", value, got.Category)
		}
		if got.DeviationPct != 0 {
			t.Fatalf("value %v: expected zero deviation, got %v", value, got.DeviationPct)
		}
		if got.Severity != SeverityMuted {
			t.Fatalf("value %v: expected muted severity, got %s", value, got.Severity)
		}
	}
}

func TestClassifyTooltipCarriesSignedPct(t *testing.T) {
	up := Classify(150, 100)
	if !strings.Contains(up.Tooltip, "+50.0%") {
		t.Fatalf("expected +50.0%% in tooltip, got %q", up.Tooltip)
	}

	down := Classify(50, 100)
	if !strings.Contains(down.Tooltip, "-50.0%") {
		t.Fatalf("expected -50.0%% in tooltip, got %q", down.Tooltip)
	}
}

func TestClassifyDeviationPct(t *testing.T) {
	got := Classify(123.4, 100)
	if got.DeviationPct < 23.39 || got.DeviationPct > 23.41 {
		t.Fatalf("expected ~23.4, got %v", got.DeviationPct)
	}
}
