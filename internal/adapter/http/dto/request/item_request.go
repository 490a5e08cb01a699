package request

import (
	"pesquisa_precos/internal/domain/entities"
)

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" binding:"required"`
	Unit        string  `json:"unit"`
	SizeWeight  string  `json:"size_weight"`
}

type PriceRecordRequest struct {
	ExternalID    string   `json:"external_id"`
	Description   string   `json:"description"`
	Unit          string   `json:"unit"`
	UnitValue     *float64 `json:"unit_value"`
	EntityName    string   `json:"entity_name"`
	Municipality  string   `json:"municipality"`
	UF            string   `json:"uf"`
	ReferenceDate string   `json:"reference_date"`
	DistanceKM    *float64 `json:"distance_km"`
	Origin        string   `json:"origin"`
}

func (r PriceRecordRequest) ToEntity() entities.PriceRecord {
	return entities.PriceRecord{
		ExternalID:    r.ExternalID,
		Description:   r.Description,
		Unit:          r.Unit,
		UnitValue:     r.UnitValue,
		EntityName:    r.EntityName,
		Municipality:  r.Municipality,
		UF:            r.UF,
		ReferenceDate: r.ReferenceDate,
		DistanceKM:    r.DistanceKM,
		Origin:        entities.SourceOrigin(r.Origin),
	}
}

// LinkSourcesRequest is the batch payload linking portal records to an item.
type LinkSourcesRequest struct {
	Records []PriceRecordRequest `json:"records" binding:"required"`
}

func (r LinkSourcesRequest) ToRecords() []entities.PriceRecord {
	out := make([]entities.PriceRecord, 0, len(r.Records))
	for _, rec := range r.Records {
		out = append(out, rec.ToEntity())
	}
	return out
}
