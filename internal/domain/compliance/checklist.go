package compliance

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"pesquisa_precos/internal/domain/entities"
)

// Legal thresholds for price research. The minimum of three sources per item
// follows the procurement rule the checklist exists to enforce; justification
// lengths are counted in runes over the trimmed text.
const (
	MinSourcesPerItem               = 3
	MinExclusionJustificationLen    = 10
	MinFinalizationJustificationLen = 20
)

// ChecklistStatus is the outcome of one checklist rule.

type ChecklistStatus string

const (
	StatusPassed  ChecklistStatus = "passed"
	StatusFailed  ChecklistStatus = "failed"
	StatusWarning ChecklistStatus = "warning"
)

// ChecklistItem is one evaluated rule. Blocking is explicit rather than
// inferred from Status: the partial minimum-sources deficiency is reported as
// a warning yet still blocks finalization, and the model has to represent
// that without contradiction.

type ChecklistItem struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	Status   ChecklistStatus `json:"status"`
	Message  string          `json:"message"`
	Blocking bool            `json:"blocking"`
}

// Checklist aggregates rule outcomes into the finalization gate.

type Checklist struct {
	Entries               []ChecklistItem `json:"entries"`
	HasBlockingIssues     bool            `json:"has_blocking_issues"`
	HasWarnings           bool            `json:"has_warnings"`
	CanFinalize           bool            `json:"can_finalize"`
	RequiresJustification bool            `json:"requires_justification"`
}

// Evaluate runs every checklist rule independently (order below is
// presentation order, not precedence) and derives the aggregate gate.
// validation may be nil when no external validation result is available.
func Evaluate(q entities.Quotation, items []entities.Item, validation *entities.ValidationResult) Checklist {
	entries := []ChecklistItem{
		evaluateHasItems(items),
		evaluateMinimumSources(items),
		evaluateMedians(items),
	}
	if validation != nil {
		entries = append(entries, evaluateValidation(*validation))
	}

	cl := Checklist{Entries: entries}
	for _, e := range entries {
		if e.Blocking && e.Status != StatusPassed {
			cl.HasBlockingIssues = true
		}
		if e.Status == StatusWarning || e.Status == StatusFailed {
			cl.HasWarnings = true
		}
	}
	cl.CanFinalize = !cl.HasBlockingIssues && q.Status != entities.QuotationStatusFinalized
	cl.RequiresJustification = cl.CanFinalize && cl.HasWarnings
	return cl
}

func evaluateHasItems(items []entities.Item) ChecklistItem {
	e := ChecklistItem{ID: "has_items", Label: "Quotation has items", Blocking: true}
	if len(items) == 0 {
		e.Status = StatusFailed
		e.Message = "The quotation has no items"
		return e
	}
	e.Status = StatusPassed
	e.Message = fmt.Sprintf("%d item(s) registered", len(items))
	return e
}

func evaluateMinimumSources(items []entities.Item) ChecklistItem {
	e := ChecklistItem{ID: "minimum_sources", Label: fmt.Sprintf("At least %d sources per item", MinSourcesPerItem)}

	deficient := 0
	for _, it := range items {
		if it.QuantidadeFontes < MinSourcesPerItem {
			deficient++
		}
	}

	switch {
	case deficient == 0:
		e.Status = StatusPassed
		e.Blocking = true
		e.Message = "Every item has the minimum number of sources"
	case deficient == len(items):
		e.Status = StatusFailed
		e.Blocking = true
		e.Message = fmt.Sprintf("No item reaches %d sources", MinSourcesPerItem)
	default:
		// Partial deficiency reads as a warning but still blocks: partial
		// non-compliance with the minimum-sources rule cannot be waived.
		e.Status = StatusWarning
		e.Blocking = true
		e.Message = fmt.Sprintf("%d of %d item(s) below %d sources", deficient, len(items), MinSourcesPerItem)
	}
	return e
}

func evaluateMedians(items []entities.Item) ChecklistItem {
	e := ChecklistItem{ID: "medians_calculated", Label: "Median calculated for all items", Blocking: true}
	missing := 0
	for _, it := range items {
		if it.Median == nil {
			missing++
		}
	}
	if missing > 0 {
		e.Status = StatusFailed
		e.Message = fmt.Sprintf("%d item(s) without a computed median", missing)
		return e
	}
	e.Status = StatusPassed
	e.Message = "All items have a computed median"
	return e
}

func evaluateValidation(v entities.ValidationResult) ChecklistItem {
	e := ChecklistItem{ID: "external_validation", Label: "Validation result", Blocking: false}
	if v.Valido {
		e.Status = StatusPassed
		e.Message = "Validation passed"
		return e
	}
	e.Status = StatusWarning
	e.Message = fmt.Sprintf("Validation reported %d error(s) and %d warning(s)", len(v.Errors), len(v.Warnings))
	return e
}

// ValidExclusionJustification gates the Included -> Excluded transition.
func ValidExclusionJustification(justification string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(justification)) >= MinExclusionJustificationLen
}

// ValidFinalizationJustification gates finalize-with-warnings.
func ValidFinalizationJustification(justification string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(justification)) >= MinFinalizationJustificationLen
}
