package interfaces

import (
	"context"

	"pesquisa_precos/internal/domain/entities"
)

// IPriceSourceRepository abstracts DynamoDB persistence for PriceSource.
//
// SetInclusion persists the inclusion flag together with the exclusion
// justification; the justification-length gate lives in the use case, the
// repository never drops a justification it was handed.

type IPriceSourceRepository interface {
	Create(ctx context.Context, s entities.PriceSource) (entities.PriceSource, error)
	GetByID(ctx context.Context, id string) (entities.PriceSource, error)
	ListByItemID(ctx context.Context, itemID string) ([]entities.PriceSource, error)
	SetInclusion(ctx context.Context, id string, included bool, justification string) (entities.PriceSource, error)
	Delete(ctx context.Context, id string) error
}
