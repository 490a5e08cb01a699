package pricing

import "fmt"

// DeviationCategory classifies how far a source price sits from the item's
// reference median.

type DeviationCategory string

const (
	CategoryValid       DeviationCategory = "valid"
	CategoryElevated    DeviationCategory = "elevated"
	CategoryExcessive   DeviationCategory = "excessive"
	CategoryInexequible DeviationCategory = "inexequible"
	CategoryUndefined   DeviationCategory = "undefined"
)

// Severity is the shared color vocabulary used by badges, checklist entries
// and error banners.

type Severity string

const (
	SeveritySuccess     Severity = "success"
	SeverityWarning     Severity = "warning"
	SeverityDestructive Severity = "destructive"
	SeverityMuted       Severity = "muted"
)

// Deviation band thresholds, in percent versus the reference median.
const (
	elevatedThresholdPct  = 20.0
	excessiveThresholdPct = 70.0
)

// Classification is the derived, non-persisted evaluation of one price
// against a reference center.

type Classification struct {
	Category     DeviationCategory `json:"category"`
	Severity     Severity          `json:"severity"`
	Tooltip      string            `json:"tooltip"`
	DeviationPct float64           `json:"deviation_pct"`
}

// Classify evaluates value against the reference center (the item median).
//
// Band precedence, first match wins:
//
//	pct >= +70            excessive
//	pct <= -70            inexequible
//	+20 <= pct < +70      elevated
//	-70 <  pct < -20      inexequible
//	otherwise             valid
//
// The negative side intentionally collapses both low bands into inexequible;
// this mirrors the behavior the auditors sign off on today, so the label
// asymmetry with the positive side must not be "fixed" here.
func Classify(value, referenceCenter float64) Classification {
	if referenceCenter == 0 {
		return Classification{
			Category:     CategoryUndefined,
			Severity:     SeverityMuted,
			Tooltip:      "No comparison base: item has no computed median",
			DeviationPct: 0,
		}
	}

	pct := (value - referenceCenter) / referenceCenter * 100

	switch {
	case pct >= excessiveThresholdPct:
		return Classification{
			Category:     CategoryExcessive,
			Severity:     SeverityDestructive,
			Tooltip:      fmt.Sprintf("Excessive price: %s versus the reference median", formatPct(pct)),
			DeviationPct: pct,
		}
	case pct <= -excessiveThresholdPct:
		return Classification{
			Category:     CategoryInexequible,
			Severity:     SeverityDestructive,
			Tooltip:      fmt.Sprintf("Unfeasibly low price: %s versus the reference median", formatPct(pct)),
			DeviationPct: pct,
		}
	case pct >= elevatedThresholdPct:
		return Classification{
			Category:     CategoryElevated,
			Severity:     SeverityWarning,
			Tooltip:      fmt.Sprintf("Elevated price: %s versus the reference median", formatPct(pct)),
			DeviationPct: pct,
		}
	case pct < -elevatedThresholdPct:
		return Classification{
			Category:     CategoryInexequible,
			Severity:     SeverityDestructive,
			Tooltip:      fmt.Sprintf("Unfeasibly low price: %s versus the reference median", formatPct(pct)),
			DeviationPct: pct,
		}
	default:
		return Classification{
			Category:     CategoryValid,
			Severity:     SeveritySuccess,
			Tooltip:      fmt.Sprintf("Within the acceptable band (%s)", formatPct(pct)),
			DeviationPct: pct,
		}
	}
}

func formatPct(pct float64) string {
	return fmt.Sprintf("%+.1f%%", pct)
}
