package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"pesquisa_precos/internal/domain/compliance"
	"pesquisa_precos/internal/usecase/interfaces"
)

var (
	ErrSourceNotFound                 = errors.New("price source not found")
	ErrInvalidSourceID                = errors.New("invalid source id")
	ErrExclusionJustificationTooShort = errors.New("exclusion justification too short")
	ErrSourceAlreadyExcluded          = errors.New("source already excluded")
	ErrSourceAlreadyIncluded          = errors.New("source already included")
)

// ISourceUseCase is the inclusion state machine for price sources.
//
// States: Included <-> Excluded. Excluding requires an audit justification of
// at least the compliance minimum length, validated before any persistence
// call; re-including needs none. Both transitions recompute and persist the
// owning item's median and return the recomputed value.

type ISourceUseCase interface {
	Exclude(ctx context.Context, sourceID, justification string) (recomputedMedian *float64, err error)
	Include(ctx context.Context, sourceID string) (recomputedMedian *float64, err error)
}

type SourceUseCase struct {
	sourceRepo interfaces.IPriceSourceRepository
	itemRepo   interfaces.IItemRepository
}

var _ ISourceUseCase = (*SourceUseCase)(nil)

func NewSourceUseCase(sourceRepo interfaces.IPriceSourceRepository, itemRepo interfaces.IItemRepository) *SourceUseCase {
	return &SourceUseCase{sourceRepo: sourceRepo, itemRepo: itemRepo}
}

func (u *SourceUseCase) Exclude(ctx context.Context, sourceID, justification string) (*float64, error) {
	sourceID = strings.TrimSpace(sourceID)
	if sourceID == "" {
		return nil, ErrInvalidSourceID
	}
	// Local gate: a too-short justification never reaches the repository.
	if !compliance.ValidExclusionJustification(justification) {
		return nil, ErrExclusionJustificationTooShort
	}

	src, err := u.sourceRepo.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	if src.ID == "" {
		return nil, ErrSourceNotFound
	}
	if !src.IncludedInCalculation {
		return nil, ErrSourceAlreadyExcluded
	}

	if _, err := u.sourceRepo.SetInclusion(ctx, sourceID, false, strings.TrimSpace(justification)); err != nil {
		return nil, err
	}
	log.Printf("[source][usecase] excluded source_id=%s item_id=%s", src.ID, src.ItemID)

	return recomputeItemAggregates(ctx, u.itemRepo, u.sourceRepo, src.ItemID)
}

func (u *SourceUseCase) Include(ctx context.Context, sourceID string) (*float64, error) {
	sourceID = strings.TrimSpace(sourceID)
	if sourceID == "" {
		return nil, ErrInvalidSourceID
	}

	src, err := u.sourceRepo.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	if src.ID == "" {
		return nil, ErrSourceNotFound
	}
	if src.IncludedInCalculation {
		return nil, ErrSourceAlreadyIncluded
	}

	// The previous justification stays on record; only the flag flips.
	if _, err := u.sourceRepo.SetInclusion(ctx, sourceID, true, src.ExclusionJustification); err != nil {
		return nil, err
	}
	log.Printf("[source][usecase] re-included source_id=%s item_id=%s", src.ID, src.ItemID)

	return recomputeItemAggregates(ctx, u.itemRepo, u.sourceRepo, src.ItemID)
}
