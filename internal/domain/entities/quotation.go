package entities

import "time"

// QuotationStatus represents the lifecycle of a price-research quotation.
//
// Domain notes:
//   - Transitions are forward-only: draft and in_progress form the "open"
//     superstate; finalized is terminal and unlocks report generation.
//   - Finalization is gated by the compliance checklist (see domain/compliance).

type QuotationStatus string

const (
	QuotationStatusDraft      QuotationStatus = "draft"
	QuotationStatusInProgress QuotationStatus = "in_progress"
	QuotationStatusFinalized  QuotationStatus = "finalized"
)

// Open reports whether the quotation still accepts mutations.
func (s QuotationStatus) Open() bool {
	return s == QuotationStatusDraft || s == QuotationStatusInProgress
}

// Quotation is a price-research project grouping line items persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// FinalizationJustification is only present when the quotation was finalized
// with unresolved warnings; it is part of the permanent audit record.

type Quotation struct {
	ID                        string          `json:"id"`
	Name                      string          `json:"name"`
	Description               string          `json:"description,omitempty"`
	ProcessNumber             string          `json:"process_number,omitempty"`
	Status                    QuotationStatus `json:"status"`
	CreatedAt                 time.Time       `json:"created_at"`
	FinalizedAt               *time.Time      `json:"finalized_at,omitempty"`
	FinalizationJustification string          `json:"finalization_justification,omitempty"`
}
