package response

import (
	"pesquisa_precos/internal/domain/entities"
)

// SearchResponse carries the filtered page plus the portal's unfiltered total
// so the caller can keep paginating.
type SearchResponse struct {
	Records []entities.PriceRecord `json:"records"`
	Total   int                    `json:"total"`
}

func FromSearchResult(records []entities.PriceRecord, total int) SearchResponse {
	if records == nil {
		records = []entities.PriceRecord{}
	}
	return SearchResponse{Records: records, Total: total}
}
