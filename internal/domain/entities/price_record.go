package entities

// PriceRecord is a procurement-portal search result before it is linked to an
// item. Nullable fields stay pointers because the portal frequently omits
// unit, value and distance; the filter pipeline defines how missing values
// behave for each filter and sort mode.
//
// ReferenceDate is kept as returned by the portal (string); parsing happens
// in the filter pipeline so unparseable dates can be dropped instead of
// failing the whole search.

type PriceRecord struct {
	ExternalID    string       `json:"external_id"`
	Description   string       `json:"description"`
	Unit          string       `json:"unit,omitempty"`
	UnitValue     *float64     `json:"unit_value,omitempty"`
	EntityName    string       `json:"entity_name,omitempty"`
	Municipality  string       `json:"municipality,omitempty"`
	UF            string       `json:"uf,omitempty"`
	ReferenceDate string       `json:"reference_date,omitempty"`
	DistanceKM    *float64     `json:"distance_km,omitempty"`
	Origin        SourceOrigin `json:"origin"`
}
