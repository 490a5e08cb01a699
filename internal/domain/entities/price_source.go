package entities

import "time"

// SourceOrigin tells where a price observation came from.

type SourceOrigin string

const (
	SourceOriginGovernmentalRecord SourceOrigin = "governmental_record"
	SourceOriginDirectQuote        SourceOrigin = "direct_quote"
)

// PriceSource is one price observation linked to an item.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (item_id-index): item_id
//
// Invariant: an excluded source (IncludedInCalculation=false) always carries a
// non-empty ExclusionJustification of at least the compliance minimum length;
// re-including flips the flag but keeps the justification for the audit trail.

type PriceSource struct {
	ID                     string       `json:"id"`
	ItemID                 string       `json:"item_id"`
	UnitValue              float64      `json:"unit_value"`
	Origin                 SourceOrigin `json:"origin"`
	Description            string       `json:"description,omitempty"`
	EntityName             string       `json:"entity_name,omitempty"`
	Municipality           string       `json:"municipality,omitempty"`
	UF                     string       `json:"uf,omitempty"`
	ReferenceDate          time.Time    `json:"reference_date"`
	IncludedInCalculation  bool         `json:"included_in_calculation"`
	ExclusionJustification string       `json:"exclusion_justification,omitempty"`
	ExternalRecordID       string       `json:"external_record_id,omitempty"`
	CreatedAt              time.Time    `json:"created_at"`
}
