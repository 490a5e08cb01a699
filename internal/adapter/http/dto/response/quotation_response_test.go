package response

import (
	"testing"
	"time"

	"pesquisa_precos/internal/domain/entities"
)

func TestFromQuotationDetails(t *testing.T) {
	now := time.Now().UTC()
	median := 50.0
	q := entities.Quotation{
		ID:        "q-1",
		Name:      "Material escolar",
		Status:    entities.QuotationStatusInProgress,
		CreatedAt: now,
	}
	items := []entities.Item{
		{ID: "item-1", Quantity: 10, Median: &median},
		{ID: "item-2", Quantity: 3}, // no median yet, contributes zero
	}

	res := FromQuotationDetails(q, items)
	if res.Quotation.ID != "q-1" || res.Quotation.Status != "in_progress" {
		t.Fatalf("unexpected quotation: %+v", res.Quotation)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.Items))
	}
	if res.Items[0].Subtotal != 500 || res.Items[1].Subtotal != 0 {
		t.Fatalf("unexpected subtotals: %+v", res.Items)
	}
	if res.Total != 500 {
		t.Fatalf("expected total 500, got %v", res.Total)
	}
}

func TestFromQuotation_FinalizationFields(t *testing.T) {
	at := time.Now().UTC()
	q := entities.Quotation{
		ID:                        "q-1",
		Name:                      "Material escolar",
		Status:                    entities.QuotationStatusFinalized,
		FinalizedAt:               &at,
		FinalizationJustification: "justificativa registrada no processo",
	}

	res := FromQuotation(q)
	if res.Status != "finalized" || res.FinalizedAt == nil || !res.FinalizedAt.Equal(at) {
		t.Fatalf("unexpected finalization fields: %+v", res)
	}
	if res.FinalizationJustification == "" {
		t.Fatalf("expected justification kept: %+v", res)
	}
}
