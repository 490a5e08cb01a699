package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"pesquisa_precos/internal/domain/compliance"
	"pesquisa_precos/internal/domain/entities"
	"pesquisa_precos/internal/domain/pricing"
	"pesquisa_precos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound                 = errors.New("quotation not found")
	ErrInvalidQuotationID                = errors.New("invalid quotation id")
	ErrInvalidQuotationName              = errors.New("invalid quotation name")
	ErrQuotationFinalized                = errors.New("quotation already finalized")
	ErrChecklistBlocking                 = errors.New("checklist has blocking issues")
	ErrFinalizationJustificationTooShort = errors.New("finalization justification too short")
)

// Coefficient of variation above this value flags high price dispersion in
// validation warnings.
const highVariationThresholdPct = 25.0

// IQuotationUseCase drives the quotation lifecycle: creation, the evaluated
// project view, validation, the compliance checklist and the one-way
// finalization transition.

type IQuotationUseCase interface {
	Create(ctx context.Context, name, description, processNumber string) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, []entities.Item, error)
	Validate(ctx context.Context, id string) (entities.ValidationResult, error)
	Checklist(ctx context.Context, id string) (compliance.Checklist, error)
	Finalize(ctx context.Context, id, justification string) (entities.Quotation, error)
	Delete(ctx context.Context, id string) error
}

type QuotationUseCase struct {
	quotationRepo interfaces.IQuotationRepository
	itemRepo      interfaces.IItemRepository
	sourceRepo    interfaces.IPriceSourceRepository
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(quotationRepo interfaces.IQuotationRepository, itemRepo interfaces.IItemRepository, sourceRepo interfaces.IPriceSourceRepository) *QuotationUseCase {
	return &QuotationUseCase{quotationRepo: quotationRepo, itemRepo: itemRepo, sourceRepo: sourceRepo}
}

func (u *QuotationUseCase) Create(ctx context.Context, name, description, processNumber string) (entities.Quotation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Quotation{}, ErrInvalidQuotationName
	}

	q := entities.Quotation{
		ID:            uuid.NewString(),
		Name:          name,
		Description:   strings.TrimSpace(description),
		ProcessNumber: strings.TrimSpace(processNumber),
		Status:        entities.QuotationStatusDraft,
		CreatedAt:     time.Now().UTC(),
	}
	return u.quotationRepo.Create(ctx, q)
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, []entities.Item, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quotation{}, nil, err
	}

	items, err := u.itemRepo.ListByQuotationID(ctx, q.ID)
	if err != nil {
		return entities.Quotation{}, nil, err
	}
	return q, items, nil
}

// Validate builds the quotation-level validation result. Errors are data
// integrity problems; warnings are advisory findings a finalization
// justification can override.
func (u *QuotationUseCase) Validate(ctx context.Context, id string) (entities.ValidationResult, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.ValidationResult{}, err
	}

	items, err := u.itemRepo.ListByQuotationID(ctx, q.ID)
	if err != nil {
		return entities.ValidationResult{}, err
	}
	return u.buildValidation(ctx, items)
}

func (u *QuotationUseCase) buildValidation(ctx context.Context, items []entities.Item) (entities.ValidationResult, error) {
	var result entities.ValidationResult
	for _, it := range items {
		sources, err := u.sourceRepo.ListByItemID(ctx, it.ID)
		if err != nil {
			return entities.ValidationResult{}, err
		}
		u.validateItem(it, sources, &result)
	}
	result.Infos = append(result.Infos, entities.ValidationMessage{
		Message: fmt.Sprintf("%d item(s) evaluated", len(items)),
	})
	result.Valido = len(result.Errors) == 0
	return result, nil
}

func (u *QuotationUseCase) validateItem(it entities.Item, sources []entities.PriceSource, result *entities.ValidationResult) {
	if it.Quantity <= 0 {
		result.Errors = append(result.Errors, entities.ValidationMessage{
			ItemID:  it.ID,
			Message: fmt.Sprintf("Item %q has a non-positive quantity", it.Name),
		})
	}

	stats := pricing.ComputeStats(sources)
	if stats.IncludedCount > 0 && it.Median == nil {
		result.Errors = append(result.Errors, entities.ValidationMessage{
			ItemID:  it.ID,
			Message: fmt.Sprintf("Item %q has included sources but no computed median", it.Name),
		})
	}

	if stats.IncludedCount < compliance.MinSourcesPerItem {
		result.Warnings = append(result.Warnings, entities.ValidationMessage{
			ItemID:  it.ID,
			Message: fmt.Sprintf("Item %q has %d included source(s); minimum is %d", it.Name, stats.IncludedCount, compliance.MinSourcesPerItem),
		})
	}
	if stats.CoefficientOfVariation > highVariationThresholdPct {
		result.Warnings = append(result.Warnings, entities.ValidationMessage{
			ItemID:  it.ID,
			Message: fmt.Sprintf("Item %q has high price dispersion (CV %.1f%%)", it.Name, stats.CoefficientOfVariation),
		})
	}

	if it.Median != nil {
		for _, s := range sources {
			if !s.IncludedInCalculation {
				continue
			}
			c := pricing.Classify(s.UnitValue, *it.Median)
			if c.Category == pricing.CategoryExcessive || c.Category == pricing.CategoryInexequible {
				result.Warnings = append(result.Warnings, entities.ValidationMessage{
					ItemID:  it.ID,
					Message: fmt.Sprintf("Item %q has an included source classified as %s (%+.1f%%)", it.Name, c.Category, c.DeviationPct),
				})
			}
		}
	}
}

func (u *QuotationUseCase) Checklist(ctx context.Context, id string) (compliance.Checklist, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return compliance.Checklist{}, err
	}

	items, err := u.itemRepo.ListByQuotationID(ctx, q.ID)
	if err != nil {
		return compliance.Checklist{}, err
	}

	validation, err := u.buildValidation(ctx, items)
	if err != nil {
		return compliance.Checklist{}, err
	}
	return compliance.Evaluate(q, items, &validation), nil
}

// Finalize performs the one-way open -> finalized transition. The checklist
// must be free of blocking issues; with outstanding warnings a justification
// of at least the compliance minimum length becomes part of the permanent
// record. On any failure the quotation is left unchanged and the call is
// retryable.
func (u *QuotationUseCase) Finalize(ctx context.Context, id, justification string) (entities.Quotation, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !q.Status.Open() {
		return entities.Quotation{}, ErrQuotationFinalized
	}

	items, err := u.itemRepo.ListByQuotationID(ctx, q.ID)
	if err != nil {
		return entities.Quotation{}, err
	}
	validation, err := u.buildValidation(ctx, items)
	if err != nil {
		return entities.Quotation{}, err
	}

	cl := compliance.Evaluate(q, items, &validation)
	if cl.HasBlockingIssues {
		return entities.Quotation{}, ErrChecklistBlocking
	}

	persisted := ""
	if cl.HasWarnings {
		if !compliance.ValidFinalizationJustification(justification) {
			return entities.Quotation{}, ErrFinalizationJustificationTooShort
		}
		persisted = strings.TrimSpace(justification)
	}

	finalized, err := u.quotationRepo.Finalize(ctx, q.ID, persisted, time.Now().UTC())
	if err != nil {
		return entities.Quotation{}, err
	}
	if finalized.ID == "" {
		// Lost the conditional update: someone finalized it first.
		return entities.Quotation{}, ErrQuotationFinalized
	}
	log.Printf("[quotation][usecase] finalized quotation_id=%s with_justification=%t", finalized.ID, persisted != "")
	return finalized, nil
}

func (u *QuotationUseCase) Delete(ctx context.Context, id string) error {
	q, err := u.load(ctx, id)
	if err != nil {
		return err
	}

	items, err := u.itemRepo.ListByQuotationID(ctx, q.ID)
	if err != nil {
		return err
	}
	// Cascade item by item; a mid-loop failure leaves the remainder intact
	// for a retry.
	for _, it := range items {
		sources, err := u.sourceRepo.ListByItemID(ctx, it.ID)
		if err != nil {
			return err
		}
		for _, s := range sources {
			if err := u.sourceRepo.Delete(ctx, s.ID); err != nil {
				return err
			}
		}
		if err := u.itemRepo.Delete(ctx, it.ID); err != nil {
			return err
		}
	}
	return u.quotationRepo.Delete(ctx, q.ID)
}

func (u *QuotationUseCase) load(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}
