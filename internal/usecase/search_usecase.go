package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"pesquisa_precos/internal/domain/entities"
	"pesquisa_precos/internal/domain/pricing"
	"pesquisa_precos/internal/usecase/interfaces"
)

var (
	ErrInvalidSearchTerm = errors.New("invalid search term")
	ErrInvalidUF         = errors.New("invalid uf")
)

// Reference data is slow-changing, so the cache keeps it for a week.
const referenceDataTTL = 7 * 24 * time.Hour

const (
	cacheKeyUFs            = "refdata:ufs"
	cacheKeyMunicipalities = "refdata:municipios:"
)

// ISearchUseCase searches the procurement portal and serves cached reference
// data. Portal results pass through the client-side filter/sort pipeline
// before they reach the caller.

type ISearchUseCase interface {
	Search(ctx context.Context, q interfaces.SearchQuery, filters pricing.FilterState) (records []entities.PriceRecord, total int, err error)
	ListUFs(ctx context.Context) ([]entities.UF, error)
	ListMunicipalities(ctx context.Context, uf string) ([]entities.Municipality, error)
}

type SearchUseCase struct {
	gateway interfaces.IPriceRecordGateway
	cache   interfaces.IReferenceCache
}

var _ ISearchUseCase = (*SearchUseCase)(nil)

func NewSearchUseCase(gateway interfaces.IPriceRecordGateway, cache interfaces.IReferenceCache) *SearchUseCase {
	return &SearchUseCase{gateway: gateway, cache: cache}
}

func (u *SearchUseCase) Search(ctx context.Context, q interfaces.SearchQuery, filters pricing.FilterState) ([]entities.PriceRecord, int, error) {
	q.Term = strings.TrimSpace(q.Term)
	if q.Term == "" {
		return nil, 0, ErrInvalidSearchTerm
	}
	if q.PageSize <= 0 {
		q.PageSize = 50
	}
	if q.Page <= 0 {
		q.Page = 1
	}

	records, total, err := u.gateway.SearchPriceRecords(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	filtered := pricing.ApplyFilters(records, filters, time.Now())
	log.Printf("[search][usecase] term=%q portal=%d filtered=%d", q.Term, len(records), len(filtered))
	return filtered, total, nil
}

func (u *SearchUseCase) ListUFs(ctx context.Context) ([]entities.UF, error) {
	var ufs []entities.UF
	if u.cachedGet(ctx, cacheKeyUFs, &ufs) {
		return ufs, nil
	}

	ufs, err := u.gateway.FetchUFs(ctx)
	if err != nil {
		return nil, err
	}
	u.cachedSet(ctx, cacheKeyUFs, ufs)
	return ufs, nil
}

func (u *SearchUseCase) ListMunicipalities(ctx context.Context, uf string) ([]entities.Municipality, error) {
	uf = strings.ToUpper(strings.TrimSpace(uf))
	if len(uf) != 2 {
		return nil, ErrInvalidUF
	}

	key := cacheKeyMunicipalities + uf
	var municipalities []entities.Municipality
	if u.cachedGet(ctx, key, &municipalities) {
		return municipalities, nil
	}

	municipalities, err := u.gateway.FetchMunicipalities(ctx, uf)
	if err != nil {
		return nil, err
	}
	u.cachedSet(ctx, key, municipalities)
	return municipalities, nil
}

// cachedGet returns true only on a clean hit; cache failures just log and
// fall back to the portal so reference data keeps working without the cache.
func (u *SearchUseCase) cachedGet(ctx context.Context, key string, out any) bool {
	if u.cache == nil {
		return false
	}
	raw, ok, err := u.cache.Get(ctx, key)
	if err != nil {
		log.Printf("[search][cache] get failed key=%s err=%v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("[search][cache] corrupt entry key=%s err=%v", key, err)
		return false
	}
	return true
}

func (u *SearchUseCase) cachedSet(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("[search][cache] marshal failed key=%s err=%v", key, err)
		return
	}
	if err := u.cache.Set(ctx, key, raw, referenceDataTTL); err != nil {
		log.Printf("[search][cache] set failed key=%s err=%v", key, err)
	}
}
