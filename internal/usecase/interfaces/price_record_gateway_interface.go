package interfaces

import (
	"context"

	"pesquisa_precos/internal/domain/entities"
)

// SearchQuery is what actually reaches the procurement portal; the rest of
// the user's filter state is applied client-side by the pricing pipeline.

type SearchQuery struct {
	Term         string
	UF           string
	Municipality string
	Page         int
	PageSize     int
}

// IPriceRecordGateway abstracts the public procurement portal (price-record
// search plus the UF/municipality reference data it serves).

type IPriceRecordGateway interface {
	SearchPriceRecords(ctx context.Context, q SearchQuery) (records []entities.PriceRecord, total int, err error)
	FetchUFs(ctx context.Context) ([]entities.UF, error)
	FetchMunicipalities(ctx context.Context, uf string) ([]entities.Municipality, error)
}
