package response

import (
	"time"

	"pesquisa_precos/internal/domain/entities"
	"pesquisa_precos/internal/domain/pricing"
	"pesquisa_precos/internal/usecase"
)

type ItemResponse struct {
	ID               string    `json:"id"`
	QuotationID      string    `json:"quotation_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Quantity         float64   `json:"quantity"`
	Unit             string    `json:"unit,omitempty"`
	SizeWeight       string    `json:"size_weight,omitempty"`
	QuantidadeFontes int       `json:"quantidade_fontes"`
	Median           *float64  `json:"median,omitempty"`
	Subtotal         float64   `json:"subtotal"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromItem(it entities.Item) ItemResponse {
	return ItemResponse{
		ID:               it.ID,
		QuotationID:      it.QuotationID,
		Name:             it.Name,
		Description:      it.Description,
		Quantity:         it.Quantity,
		Unit:             it.Unit,
		SizeWeight:       it.SizeWeight,
		QuantidadeFontes: it.QuantidadeFontes,
		Median:           it.Median,
		Subtotal:         it.Subtotal(),
		CreatedAt:        it.CreatedAt,
		UpdatedAt:        it.UpdatedAt,
	}
}

// SourceDetailResponse pairs a source with its deviation classification
// against the item median.
type SourceDetailResponse struct {
	Source         SourceResponse         `json:"source"`
	Classification pricing.Classification `json:"classification"`
}

type ItemDetailsResponse struct {
	Item    ItemResponse           `json:"item"`
	Sources []SourceDetailResponse `json:"sources"`
	Stats   pricing.Stats          `json:"stats"`
}

func FromItemDetails(d usecase.ItemDetails) ItemDetailsResponse {
	out := ItemDetailsResponse{
		Item:    FromItem(d.Item),
		Sources: make([]SourceDetailResponse, 0, len(d.Sources)),
		Stats:   d.Stats,
	}
	for _, s := range d.Sources {
		out.Sources = append(out.Sources, SourceDetailResponse{
			Source:         FromPriceSource(s.Source),
			Classification: s.Classification,
		})
	}
	return out
}

// LinkSourcesResponse reports a batch link run; failed_record_id is only set
// when the batch stopped early.
type LinkSourcesResponse struct {
	Linked         []SourceResponse `json:"linked"`
	FailedRecordID string           `json:"failed_record_id,omitempty"`
}

func FromLinkResult(r usecase.LinkResult) LinkSourcesResponse {
	out := LinkSourcesResponse{
		Linked:         make([]SourceResponse, 0, len(r.Linked)),
		FailedRecordID: r.FailedRecordID,
	}
	for _, s := range r.Linked {
		out.Linked = append(out.Linked, FromPriceSource(s))
	}
	return out
}
