package response

import (
	"time"

	"pesquisa_precos/internal/domain/entities"
)

type SourceResponse struct {
	ID                     string    `json:"id"`
	ItemID                 string    `json:"item_id"`
	UnitValue              float64   `json:"unit_value"`
	Origin                 string    `json:"origin"`
	Description            string    `json:"description,omitempty"`
	EntityName             string    `json:"entity_name,omitempty"`
	Municipality           string    `json:"municipality,omitempty"`
	UF                     string    `json:"uf,omitempty"`
	ReferenceDate          time.Time `json:"reference_date"`
	IncludedInCalculation  bool      `json:"included_in_calculation"`
	ExclusionJustification string    `json:"exclusion_justification,omitempty"`
	ExternalRecordID       string    `json:"external_record_id,omitempty"`
}

func FromPriceSource(s entities.PriceSource) SourceResponse {
	return SourceResponse{
		ID:                     s.ID,
		ItemID:                 s.ItemID,
		UnitValue:              s.UnitValue,
		Origin:                 string(s.Origin),
		Description:            s.Description,
		EntityName:             s.EntityName,
		Municipality:           s.Municipality,
		UF:                     s.UF,
		ReferenceDate:          s.ReferenceDate,
		IncludedInCalculation:  s.IncludedInCalculation,
		ExclusionJustification: s.ExclusionJustification,
		ExternalRecordID:       s.ExternalRecordID,
	}
}

// MedianResponse is returned by the source mutations that trigger a median
// recompute; median is null when the item has no included sources left.
type MedianResponse struct {
	Median *float64 `json:"median"`
}
