package interfaces

import (
	"context"

	"pesquisa_precos/internal/domain/entities"
)

// IItemRepository abstracts DynamoDB persistence for Item.
//
// UpdateAggregates persists the recomputed median and the total linked-source
// count together; they always change as a pair after a source mutation.

type IItemRepository interface {
	Create(ctx context.Context, it entities.Item) (entities.Item, error)
	GetByID(ctx context.Context, id string) (entities.Item, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.Item, error)
	UpdateAggregates(ctx context.Context, id string, median *float64, sourceCount int) (entities.Item, error)
	Delete(ctx context.Context, id string) error
}
