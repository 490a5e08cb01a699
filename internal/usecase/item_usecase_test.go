package usecase

import (
	"context"
	"errors"
	"testing"

	"pesquisa_precos/internal/domain/entities"
	"pesquisa_precos/internal/domain/pricing"
	mock_interfaces "pesquisa_precos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestItemUseCase_AddItem(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewItemUseCase(nil, nil, nil)
		_, err := uc.AddItem(context.Background(), "q-1", NewItem{Name: "  ", Quantity: 1})
		if !errors.Is(err, ErrInvalidItemName) {
			t.Fatalf("expected ErrInvalidItemName, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		uc := NewItemUseCase(nil, nil, nil)
		_, err := uc.AddItem(context.Background(), "q-1", NewItem{Name: "Caneta", Quantity: 0})
		if !errors.Is(err, ErrInvalidItemQty) {
			t.Fatalf("expected ErrInvalidItemQty, got %v", err)
		}
	})

	t.Run("finalized quotation rejects new items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewItemUseCase(nil, nil, quotationRepo)

		quotationRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusFinalized}, nil)

		_, err := uc.AddItem(context.Background(), "q-1", NewItem{Name: "Caneta", Quantity: 1})
		if !errors.Is(err, ErrQuotationFinalized) {
			t.Fatalf("expected ErrQuotationFinalized, got %v", err)
		}
	})

	t.Run("first item promotes draft to in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewItemUseCase(itemRepo, nil, quotationRepo)

		quotationRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusDraft}, nil)
		itemRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Item{})).DoAndReturn(
			func(_ context.Context, it entities.Item) (entities.Item, error) {
				if it.ID == "" || it.QuotationID != "q-1" || it.Name != "Caneta" {
					t.Fatalf("unexpected item: %+v", it)
				}
				return it, nil
			},
		)
		quotationRepo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuotationStatusInProgress).Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusInProgress}, nil)

		it, err := uc.AddItem(context.Background(), "q-1", NewItem{Name: " Caneta ", Quantity: 10, Unit: "caixa"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.Unit != "caixa" {
			t.Fatalf("expected unit kept, got %+v", it)
		}
	})

	t.Run("in-progress quotation keeps its status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewItemUseCase(itemRepo, nil, quotationRepo)

		quotationRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusInProgress}, nil)
		itemRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, it entities.Item) (entities.Item, error) { return it, nil },
		)
		// No UpdateStatus expectation: calling it would fail the controller.

		if _, err := uc.AddItem(context.Background(), "q-1", NewItem{Name: "Caneta", Quantity: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestItemUseCase_GetDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
	sourceRepo := mock_interfaces.NewMockIPriceSourceRepository(ctrl)
	uc := NewItemUseCase(itemRepo, sourceRepo, nil)

	itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.Item{
		ID: "item-1", Name: "Caneta", Quantity: 10, Median: floatPtr(100),
	}, nil)
	sourceRepo.EXPECT().ListByItemID(gomock.Any(), "item-1").Return([]entities.PriceSource{
		{ID: "src-1", UnitValue: 100, IncludedInCalculation: true},
		{ID: "src-2", UnitValue: 250, IncludedInCalculation: true},
		{ID: "src-3", UnitValue: 90, IncludedInCalculation: false},
	}, nil)

	details, err := uc.GetDetails(context.Background(), "item-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details.Sources) != 3 {
		t.Fatalf("expected 3 sources, got %d", len(details.Sources))
	}
	// Classification uses the stored median as center: +150% is excessive.
	if got := details.Sources[1].Classification.Category; got != pricing.CategoryExcessive {
		t.Fatalf("expected excessive for 250 vs median 100, got %s", got)
	}
	if got := details.Sources[0].Classification.Category; got != pricing.CategoryValid {
		t.Fatalf("expected valid for 100 vs median 100, got %s", got)
	}
	// Stats only see included sources.
	if details.Stats.IncludedCount != 2 || details.Stats.Mean != 175 {
		t.Fatalf("unexpected stats: %+v", details.Stats)
	}
}

func TestItemUseCase_LinkSources(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		uc := NewItemUseCase(nil, nil, nil)
		_, err := uc.LinkSources(context.Background(), "item-1", nil)
		if !errors.Is(err, ErrNoRecordsToLink) {
			t.Fatalf("expected ErrNoRecordsToLink, got %v", err)
		}
	})

	t.Run("stops at first failure and reports the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
		sourceRepo := mock_interfaces.NewMockIPriceSourceRepository(ctrl)
		uc := NewItemUseCase(itemRepo, sourceRepo, nil)

		itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.Item{ID: "item-1"}, nil)
		// First record links and triggers a recompute; second has no value and
		// must stop the batch without touching the repositories again.
		sourceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.PriceSource) (entities.PriceSource, error) {
				if s.UnitValue != 120 || !s.IncludedInCalculation || s.ExternalRecordID != "rec-1" {
					t.Fatalf("unexpected source: %+v", s)
				}
				return s, nil
			},
		)
		sourceRepo.EXPECT().ListByItemID(gomock.Any(), "item-1").Return([]entities.PriceSource{
			{ID: "src-1", UnitValue: 120, IncludedInCalculation: true},
		}, nil)
		itemRepo.EXPECT().UpdateAggregates(gomock.Any(), "item-1", gomock.Any(), 1).Return(entities.Item{ID: "item-1"}, nil)

		records := []entities.PriceRecord{
			{ExternalID: "rec-1", UnitValue: floatPtr(120), ReferenceDate: "2026-01-10"},
			{ExternalID: "rec-2", UnitValue: nil},
			{ExternalID: "rec-3", UnitValue: floatPtr(80)},
		}
		result, err := uc.LinkSources(context.Background(), "item-1", records)
		if !errors.Is(err, ErrRecordWithoutValue) {
			t.Fatalf("expected ErrRecordWithoutValue, got %v", err)
		}
		if len(result.Linked) != 1 || result.FailedRecordID != "rec-2" {
			t.Fatalf("unexpected result: %+v", result)
		}
	})

	t.Run("links all records recomputing after each", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
		sourceRepo := mock_interfaces.NewMockIPriceSourceRepository(ctrl)
		uc := NewItemUseCase(itemRepo, sourceRepo, nil)

		itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.Item{ID: "item-1"}, nil)
		sourceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.PriceSource) (entities.PriceSource, error) { return s, nil },
		).Times(2)
		sourceRepo.EXPECT().ListByItemID(gomock.Any(), "item-1").Return([]entities.PriceSource{
			{ID: "src-1", UnitValue: 100, IncludedInCalculation: true},
		}, nil)
		sourceRepo.EXPECT().ListByItemID(gomock.Any(), "item-1").Return([]entities.PriceSource{
			{ID: "src-1", UnitValue: 100, IncludedInCalculation: true},
			{ID: "src-2", UnitValue: 200, IncludedInCalculation: true},
		}, nil)
		itemRepo.EXPECT().UpdateAggregates(gomock.Any(), "item-1", gomock.Any(), 1).Return(entities.Item{ID: "item-1"}, nil)
		itemRepo.EXPECT().UpdateAggregates(gomock.Any(), "item-1", gomock.Any(), 2).DoAndReturn(
			func(_ context.Context, _ string, median *float64, _ int) (entities.Item, error) {
				if median == nil || *median != 150 {
					t.Fatalf("expected final median 150, got %v", median)
				}
				return entities.Item{ID: "item-1"}, nil
			},
		)

		records := []entities.PriceRecord{
			{ExternalID: "rec-1", UnitValue: floatPtr(100), ReferenceDate: "2026-01-10"},
			{ExternalID: "rec-2", UnitValue: floatPtr(200), ReferenceDate: "2026-02-01"},
		}
		result, err := uc.LinkSources(context.Background(), "item-1", records)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Linked) != 2 || result.FailedRecordID != "" {
			t.Fatalf("unexpected result: %+v", result)
		}
	})
}

func TestItemUseCase_UnlinkSource(t *testing.T) {
	t.Run("source belonging to another item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sourceRepo := mock_interfaces.NewMockIPriceSourceRepository(ctrl)
		uc := NewItemUseCase(nil, sourceRepo, nil)

		sourceRepo.EXPECT().GetByID(gomock.Any(), "src-1").Return(entities.PriceSource{ID: "src-1", ItemID: "other"}, nil)

		_, err := uc.UnlinkSource(context.Background(), "item-1", "src-1")
		if !errors.Is(err, ErrSourceNotFound) {
			t.Fatalf("expected ErrSourceNotFound, got %v", err)
		}
	})

	t.Run("removes excluded source and recomputes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
		sourceRepo := mock_interfaces.NewMockIPriceSourceRepository(ctrl)
		uc := NewItemUseCase(itemRepo, sourceRepo, nil)

		sourceRepo.EXPECT().GetByID(gomock.Any(), "src-2").Return(entities.PriceSource{
			ID: "src-2", ItemID: "item-1", IncludedInCalculation: false,
		}, nil)
		sourceRepo.EXPECT().Delete(gomock.Any(), "src-2").Return(nil)
		sourceRepo.EXPECT().ListByItemID(gomock.Any(), "item-1").Return([]entities.PriceSource{
			{ID: "src-1", UnitValue: 50, IncludedInCalculation: true},
		}, nil)
		itemRepo.EXPECT().UpdateAggregates(gomock.Any(), "item-1", gomock.Any(), 1).Return(entities.Item{ID: "item-1"}, nil)

		median, err := uc.UnlinkSource(context.Background(), "item-1", "src-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if median == nil || *median != 50 {
			t.Fatalf("expected median 50, got %v", median)
		}
	})
}

func TestItemUseCase_DeleteCascades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
	sourceRepo := mock_interfaces.NewMockIPriceSourceRepository(ctrl)
	uc := NewItemUseCase(itemRepo, sourceRepo, nil)

	itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.Item{ID: "item-1"}, nil)
	sourceRepo.EXPECT().ListByItemID(gomock.Any(), "item-1").Return([]entities.PriceSource{{ID: "src-1"}}, nil)
	gomock.InOrder(
		sourceRepo.EXPECT().Delete(gomock.Any(), "src-1").Return(nil),
		itemRepo.EXPECT().Delete(gomock.Any(), "item-1").Return(nil),
	)

	if err := uc.Delete(context.Background(), "item-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
