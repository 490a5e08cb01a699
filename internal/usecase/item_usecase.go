package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"pesquisa_precos/internal/domain/entities"
	"pesquisa_precos/internal/domain/pricing"
	"pesquisa_precos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound       = errors.New("item not found")
	ErrInvalidItemID      = errors.New("invalid item id")
	ErrInvalidItemName    = errors.New("invalid item name")
	ErrInvalidItemQty     = errors.New("invalid item quantity")
	ErrNoRecordsToLink    = errors.New("no records to link")
	ErrRecordWithoutValue = errors.New("record has no unit value")
)

// NewItem carries the caller-provided fields for item creation.

type NewItem struct {
	Name        string
	Description string
	Quantity    float64
	Unit        string
	SizeWeight  string
}

// SourceDetail pairs a stored source with its deviation classification
// against the item's current median.

type SourceDetail struct {
	Source         entities.PriceSource   `json:"source"`
	Classification pricing.Classification `json:"classification"`
}

// ItemDetails is the full evaluation view of one item.

type ItemDetails struct {
	Item    entities.Item  `json:"item"`
	Sources []SourceDetail `json:"sources"`
	Stats   pricing.Stats  `json:"stats"`
}

// LinkResult reports a sequential batch-link run: sources created before the
// first failure stay linked; FailedRecordID is set when Err is non-nil.

type LinkResult struct {
	Linked         []entities.PriceSource
	FailedRecordID string
}

// IItemUseCase exposes item operations: creation, the evaluated detail view,
// source linking/unlinking and cascade deletion.

type IItemUseCase interface {
	AddItem(ctx context.Context, quotationID string, in NewItem) (entities.Item, error)
	GetDetails(ctx context.Context, itemID string) (ItemDetails, error)
	LinkSources(ctx context.Context, itemID string, records []entities.PriceRecord) (LinkResult, error)
	UnlinkSource(ctx context.Context, itemID, sourceID string) (recomputedMedian *float64, err error)
	Delete(ctx context.Context, itemID string) error
}

type ItemUseCase struct {
	itemRepo      interfaces.IItemRepository
	sourceRepo    interfaces.IPriceSourceRepository
	quotationRepo interfaces.IQuotationRepository
}

var _ IItemUseCase = (*ItemUseCase)(nil)

func NewItemUseCase(itemRepo interfaces.IItemRepository, sourceRepo interfaces.IPriceSourceRepository, quotationRepo interfaces.IQuotationRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, sourceRepo: sourceRepo, quotationRepo: quotationRepo}
}

func (u *ItemUseCase) AddItem(ctx context.Context, quotationID string, in NewItem) (entities.Item, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.Item{}, ErrInvalidQuotationID
	}
	if strings.TrimSpace(in.Name) == "" {
		return entities.Item{}, ErrInvalidItemName
	}
	if in.Quantity <= 0 {
		return entities.Item{}, ErrInvalidItemQty
	}

	q, err := u.quotationRepo.GetByID(ctx, quotationID)
	if err != nil {
		return entities.Item{}, err
	}
	if q.ID == "" {
		return entities.Item{}, ErrQuotationNotFound
	}
	if !q.Status.Open() {
		return entities.Item{}, ErrQuotationFinalized
	}

	now := time.Now().UTC()
	it := entities.Item{
		ID:          uuid.NewString(),
		QuotationID: quotationID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Quantity:    in.Quantity,
		Unit:        strings.TrimSpace(in.Unit),
		SizeWeight:  strings.TrimSpace(in.SizeWeight),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.itemRepo.Create(ctx, it)
	if err != nil {
		return entities.Item{}, err
	}

	// First item moves the quotation out of draft.
	if q.Status == entities.QuotationStatusDraft {
		if _, err := u.quotationRepo.UpdateStatus(ctx, quotationID, entities.QuotationStatusInProgress); err != nil {
			log.Printf("[item][usecase] failed promoting quotation status quotation_id=%s err=%v", quotationID, err)
		}
	}

	return created, nil
}

func (u *ItemUseCase) GetDetails(ctx context.Context, itemID string) (ItemDetails, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return ItemDetails{}, ErrInvalidItemID
	}

	it, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return ItemDetails{}, err
	}
	if it.ID == "" {
		return ItemDetails{}, ErrItemNotFound
	}

	sources, err := u.sourceRepo.ListByItemID(ctx, itemID)
	if err != nil {
		return ItemDetails{}, err
	}

	center := 0.0
	if it.Median != nil {
		center = *it.Median
	}

	details := ItemDetails{
		Item:    it,
		Sources: make([]SourceDetail, 0, len(sources)),
		Stats:   pricing.ComputeStats(sources),
	}
	for _, s := range sources {
		details.Sources = append(details.Sources, SourceDetail{
			Source:         s,
			Classification: pricing.Classify(s.UnitValue, center),
		})
	}
	return details, nil
}

// LinkSources links portal records to the item strictly in order. The portal
// recomputes nothing for us anymore: the median is recomputed here after each
// successful link, so the loop must stay sequential. On the first failure the
// already-linked sources remain and the error is returned with the offending
// record id; the caller retries the remainder.
func (u *ItemUseCase) LinkSources(ctx context.Context, itemID string, records []entities.PriceRecord) (LinkResult, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return LinkResult{}, ErrInvalidItemID
	}
	if len(records) == 0 {
		return LinkResult{}, ErrNoRecordsToLink
	}

	it, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return LinkResult{}, err
	}
	if it.ID == "" {
		return LinkResult{}, ErrItemNotFound
	}

	result := LinkResult{Linked: make([]entities.PriceSource, 0, len(records))}
	for _, rec := range records {
		src, err := u.linkOne(ctx, itemID, rec)
		if err != nil {
			result.FailedRecordID = rec.ExternalID
			log.Printf("[item][usecase] link failed item_id=%s record_id=%s linked=%d err=%v", itemID, rec.ExternalID, len(result.Linked), err)
			return result, err
		}
		result.Linked = append(result.Linked, src)
	}

	log.Printf("[item][usecase] linked %d source(s) item_id=%s", len(result.Linked), itemID)
	return result, nil
}

func (u *ItemUseCase) linkOne(ctx context.Context, itemID string, rec entities.PriceRecord) (entities.PriceSource, error) {
	if rec.UnitValue == nil || *rec.UnitValue <= 0 {
		return entities.PriceSource{}, ErrRecordWithoutValue
	}

	origin := rec.Origin
	if origin == "" {
		origin = entities.SourceOriginGovernmentalRecord
	}

	refDate, _ := time.Parse("2006-01-02", rec.ReferenceDate)

	src := entities.PriceSource{
		ID:                    uuid.NewString(),
		ItemID:                itemID,
		UnitValue:             *rec.UnitValue,
		Origin:                origin,
		Description:           rec.Description,
		EntityName:            rec.EntityName,
		Municipality:          rec.Municipality,
		UF:                    rec.UF,
		ReferenceDate:         refDate,
		IncludedInCalculation: true,
		ExternalRecordID:      rec.ExternalID,
		CreatedAt:             time.Now().UTC(),
	}

	created, err := u.sourceRepo.Create(ctx, src)
	if err != nil {
		return entities.PriceSource{}, err
	}
	if _, err := recomputeItemAggregates(ctx, u.itemRepo, u.sourceRepo, itemID); err != nil {
		return entities.PriceSource{}, err
	}
	return created, nil
}

func (u *ItemUseCase) UnlinkSource(ctx context.Context, itemID, sourceID string) (*float64, error) {
	itemID = strings.TrimSpace(itemID)
	sourceID = strings.TrimSpace(sourceID)
	if itemID == "" {
		return nil, ErrInvalidItemID
	}
	if sourceID == "" {
		return nil, ErrInvalidSourceID
	}

	src, err := u.sourceRepo.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	if src.ID == "" || src.ItemID != itemID {
		return nil, ErrSourceNotFound
	}

	// Removal is allowed regardless of inclusion state.
	if err := u.sourceRepo.Delete(ctx, sourceID); err != nil {
		return nil, err
	}
	log.Printf("[item][usecase] unlinked source_id=%s item_id=%s", sourceID, itemID)

	return recomputeItemAggregates(ctx, u.itemRepo, u.sourceRepo, itemID)
}

func (u *ItemUseCase) Delete(ctx context.Context, itemID string) error {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return ErrInvalidItemID
	}

	it, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if it.ID == "" {
		return ErrItemNotFound
	}

	// Cascade: sources first, then the item.
	sources, err := u.sourceRepo.ListByItemID(ctx, itemID)
	if err != nil {
		return err
	}
	for _, s := range sources {
		if err := u.sourceRepo.Delete(ctx, s.ID); err != nil {
			return err
		}
	}
	return u.itemRepo.Delete(ctx, itemID)
}
