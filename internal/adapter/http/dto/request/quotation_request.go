package request

import "strings"

type CreateQuotationRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	ProcessNumber string `json:"process_number"`
}

func (r CreateQuotationRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

// FinalizeQuotationRequest carries the optional override justification; the
// use case decides whether one is required.
type FinalizeQuotationRequest struct {
	Justification string `json:"justification"`
}
