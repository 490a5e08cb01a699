package usecase

import (
	"context"

	"pesquisa_precos/internal/domain/pricing"
	"pesquisa_precos/internal/usecase/interfaces"
)

// recomputeItemAggregates reloads the item's sources, recomputes the
// authoritative median over the included subset and persists it together with
// the total linked-source count. Every source mutation (link, unlink,
// include, exclude) funnels through here so callers only ever observe
// confirmed state.
func recomputeItemAggregates(
	ctx context.Context,
	itemRepo interfaces.IItemRepository,
	sourceRepo interfaces.IPriceSourceRepository,
	itemID string,
) (*float64, error) {
	sources, err := sourceRepo.ListByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	median := pricing.Median(pricing.IncludedValues(sources))
	if _, err := itemRepo.UpdateAggregates(ctx, itemID, median, len(sources)); err != nil {
		return nil, err
	}
	return median, nil
}
