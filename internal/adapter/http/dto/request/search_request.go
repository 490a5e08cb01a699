package request

import (
	"strings"

	"pesquisa_precos/internal/domain/pricing"
	"pesquisa_precos/internal/usecase/interfaces"
)

// SearchRequest binds the price-search query string. Term, UF, municipality
// and pagination go to the portal; the remaining fields feed the local
// filter/sort pipeline.
type SearchRequest struct {
	Term         string   `form:"term" binding:"required"`
	UF           string   `form:"uf"`
	Municipality string   `form:"municipality"`
	Page         int      `form:"page"`
	PageSize     int      `form:"page_size"`
	Units        []string `form:"unit"`
	MinValue     *float64 `form:"min_value"`
	MaxValue     *float64 `form:"max_value"`
	Sort         string   `form:"sort"`
	PeriodMonths int      `form:"period_months"`
}

func (r SearchRequest) ToQuery() interfaces.SearchQuery {
	return interfaces.SearchQuery{
		Term:         strings.TrimSpace(r.Term),
		UF:           strings.TrimSpace(r.UF),
		Municipality: strings.TrimSpace(r.Municipality),
		Page:         r.Page,
		PageSize:     r.PageSize,
	}
}

func (r SearchRequest) ToFilterState() pricing.FilterState {
	return pricing.FilterState{
		SelectedUnits: r.Units,
		MinValue:      r.MinValue,
		MaxValue:      r.MaxValue,
		Sort:          r.ResolveSort(),
		PeriodMonths:  r.PeriodMonths,
	}
}

// ResolveSort falls back to relevance for unknown modes instead of rejecting
// the request.
func (r SearchRequest) ResolveSort() pricing.SortMode {
	switch pricing.SortMode(r.Sort) {
	case pricing.SortValueAsc, pricing.SortValueDesc, pricing.SortDistanceAsc, pricing.SortDistanceDesc:
		return pricing.SortMode(r.Sort)
	default:
		return pricing.SortRelevance
	}
}
