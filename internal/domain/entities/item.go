package entities

import "time"

// Item is a line item being priced inside a quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quotation_id-index): quotation_id
//
// QuantidadeFontes counts every linked source, included or excluded; the
// median only considers included sources and is recomputed on every source
// mutation. Median stays nil until at least one included source exists.

type Item struct {
	ID               string    `json:"id"`
	QuotationID      string    `json:"quotation_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Quantity         float64   `json:"quantity"`
	Unit             string    `json:"unit"`
	SizeWeight       string    `json:"size_weight,omitempty"`
	QuantidadeFontes int       `json:"quantidade_fontes"`
	Median           *float64  `json:"median,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Subtotal is the reference total for the item: median * quantity.
// Zero while no median has been computed.
func (i Item) Subtotal() float64 {
	if i.Median == nil {
		return 0
	}
	return *i.Median * i.Quantity
}
