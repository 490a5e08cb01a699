package response

import (
	"time"

	"pesquisa_precos/internal/domain/entities"
)

type QuotationResponse struct {
	ID                        string     `json:"id"`
	Name                      string     `json:"name"`
	Description               string     `json:"description,omitempty"`
	ProcessNumber             string     `json:"process_number,omitempty"`
	Status                    string     `json:"status"`
	CreatedAt                 time.Time  `json:"created_at"`
	FinalizedAt               *time.Time `json:"finalized_at,omitempty"`
	FinalizationJustification string     `json:"finalization_justification,omitempty"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:                        q.ID,
		Name:                      q.Name,
		Description:               q.Description,
		ProcessNumber:             q.ProcessNumber,
		Status:                    string(q.Status),
		CreatedAt:                 q.CreatedAt,
		FinalizedAt:               q.FinalizedAt,
		FinalizationJustification: q.FinalizationJustification,
	}
}

// QuotationDetailsResponse is the project view: the quotation, its items and
// the running total (sum of item subtotals, median * quantity).
type QuotationDetailsResponse struct {
	Quotation QuotationResponse `json:"quotation"`
	Items     []ItemResponse    `json:"items"`
	Total     float64           `json:"total"`
}

func FromQuotationDetails(q entities.Quotation, items []entities.Item) QuotationDetailsResponse {
	out := QuotationDetailsResponse{
		Quotation: FromQuotation(q),
		Items:     make([]ItemResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, FromItem(it))
		out.Total += it.Subtotal()
	}
	return out
}
