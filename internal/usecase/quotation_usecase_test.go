package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pesquisa_precos/internal/domain/compliance"
	"pesquisa_precos/internal/domain/entities"
	mock_interfaces "pesquisa_precos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 { return &v }

func includedSources(itemID string, values ...float64) []entities.PriceSource {
	out := make([]entities.PriceSource, 0, len(values))
	for _, v := range values {
		out = append(out, entities.PriceSource{ItemID: itemID, UnitValue: v, IncludedInCalculation: true})
	}
	return out
}

func TestQuotationUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), "   ", "", "")
		if !errors.Is(err, ErrInvalidQuotationName) {
			t.Fatalf("expected ErrInvalidQuotationName, got %v", err)
		}
	})

	t.Run("success starts as draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quotation{})).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.ID == "" || q.Name != "Material escolar" || q.Status != entities.QuotationStatusDraft {
					t.Fatalf("unexpected quotation: %+v", q)
				}
				if q.CreatedAt.IsZero() {
					t.Fatalf("expected creation timestamp")
				}
				return q, nil
			},
		)

		q, err := uc.Create(context.Background(), " Material escolar ", "desc", "proc-001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ProcessNumber != "proc-001" {
			t.Fatalf("expected process number, got %+v", q)
		}
	})
}

func TestQuotationUseCase_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
	itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
	sourceRepo := mock_interfaces.NewMockIPriceSourceRepository(ctrl)
	uc := NewQuotationUseCase(quotationRepo, itemRepo, sourceRepo)

	item := entities.Item{ID: "item-1", Name: "Caneta", Quantity: 2, QuantidadeFontes: 2, Median: floatPtr(100)}
	quotationRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusInProgress}, nil)
	itemRepo.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return([]entities.Item{item}, nil)
	// Two included sources, high dispersion, one excessive versus the median.
	sourceRepo.EXPECT().ListByItemID(gomock.Any(), "item-1").Return(includedSources("item-1", 100, 250), nil)

	result, err := uc.Validate(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valido {
		t.Fatalf("expected valido=true (warnings only), got %+v", result)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %+v", result.Errors)
	}
	if len(result.Warnings) != 3 {
		t.Fatalf("expected 3 warnings (few sources, dispersion, outlier), got %+v", result.Warnings)
	}
	for _, w := range result.Warnings {
		if w.ItemID != "item-1" {
			t.Fatalf("warning not tagged with item id: %+v", w)
		}
	}
}

func TestQuotationUseCase_Checklist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
	itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
	sourceRepo := mock_interfaces.NewMockIPriceSourceRepository(ctrl)
	uc := NewQuotationUseCase(quotationRepo, itemRepo, sourceRepo)

	item := entities.Item{ID: "item-1", Name: "Caneta", Quantity: 10, QuantidadeFontes: 3, Median: floatPtr(100)}
	quotationRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusInProgress}, nil)
	itemRepo.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return([]entities.Item{item}, nil)
	sourceRepo.EXPECT().ListByItemID(gomock.Any(), "item-1").Return(includedSources("item-1", 100, 100, 100), nil)

	cl, err := uc.Checklist(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cl.Entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(cl.Entries))
	}
	if cl.HasBlockingIssues || cl.HasWarnings || !cl.CanFinalize {
		t.Fatalf("expected clean finalizable checklist, got %+v", cl)
	}
	for _, e := range cl.Entries {
		if e.Status != compliance.StatusPassed {
			t.Fatalf("expected all entries passed, got %+v", e)
		}
	}
}

func TestQuotationUseCase_Finalize(t *testing.T) {
	t.Run("already finalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(quotationRepo, nil, nil)

		quotationRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusFinalized}, nil)

		_, err := uc.Finalize(context.Background(), "q-1", "")
		if !errors.Is(err, ErrQuotationFinalized) {
			t.Fatalf("expected ErrQuotationFinalized, got %v", err)
		}
	})

	t.Run("blocking checklist rejects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
		sourceRepo := mock_interfaces.NewMockIPriceSourceRepository(ctrl)
		uc := NewQuotationUseCase(quotationRepo, itemRepo, sourceRepo)

		quotationRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusDraft}, nil)
		itemRepo.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return(nil, nil)

		_, err := uc.Finalize(context.Background(), "q-1", strings.Repeat("a", 30))
		if !errors.Is(err, ErrChecklistBlocking) {
			t.Fatalf("expected ErrChecklistBlocking, got %v", err)
		}
	})

	t.Run("warnings demand twenty characters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
		sourceRepo := mock_interfaces.NewMockIPriceSourceRepository(ctrl)
		uc := NewQuotationUseCase(quotationRepo, itemRepo, sourceRepo)

		// Quantity zero is a validation error: checklist stays unblocked but
		// carries the overridable validation warning.
		item := entities.Item{ID: "item-1", Name: "Caneta", Quantity: 0, QuantidadeFontes: 3, Median: floatPtr(100)}
		quotationRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusInProgress}, nil)
		itemRepo.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return([]entities.Item{item}, nil)
		sourceRepo.EXPECT().ListByItemID(gomock.Any(), "item-1").Return(includedSources("item-1", 100, 100, 100), nil)

		_, err := uc.Finalize(context.Background(), "q-1", strings.Repeat("a", 19))
		if !errors.Is(err, ErrFinalizationJustificationTooShort) {
			t.Fatalf("expected ErrFinalizationJustificationTooShort, got %v", err)
		}
	})

	t.Run("warnings accept twenty characters and persist them", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
		sourceRepo := mock_interfaces.NewMockIPriceSourceRepository(ctrl)
		uc := NewQuotationUseCase(quotationRepo, itemRepo, sourceRepo)

		justification := strings.Repeat("a", 20)
		item := entities.Item{ID: "item-1", Name: "Caneta", Quantity: 0, QuantidadeFontes: 3, Median: floatPtr(100)}
		quotationRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusInProgress}, nil)
		itemRepo.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return([]entities.Item{item}, nil)
		sourceRepo.EXPECT().ListByItemID(gomock.Any(), "item-1").Return(includedSources("item-1", 100, 100, 100), nil)
		quotationRepo.EXPECT().Finalize(gomock.Any(), "q-1", justification, gomock.AssignableToTypeOf(time.Time{})).Return(entities.Quotation{
			ID: "q-1", Status: entities.QuotationStatusFinalized, FinalizationJustification: justification,
		}, nil)

		q, err := uc.Finalize(context.Background(), "q-1", justification)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuotationStatusFinalized {
			t.Fatalf("expected finalized, got %+v", q)
		}
	})

	t.Run("clean checklist finalizes without justification payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
		sourceRepo := mock_interfaces.NewMockIPriceSourceRepository(ctrl)
		uc := NewQuotationUseCase(quotationRepo, itemRepo, sourceRepo)

		item := entities.Item{ID: "item-1", Name: "Caneta", Quantity: 10, QuantidadeFontes: 3, Median: floatPtr(100)}
		quotationRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusInProgress}, nil)
		itemRepo.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return([]entities.Item{item}, nil)
		sourceRepo.EXPECT().ListByItemID(gomock.Any(), "item-1").Return(includedSources("item-1", 100, 100, 100), nil)
		quotationRepo.EXPECT().Finalize(gomock.Any(), "q-1", "", gomock.AssignableToTypeOf(time.Time{})).Return(entities.Quotation{
			ID: "q-1", Status: entities.QuotationStatusFinalized,
		}, nil)

		// Any caller-provided text is dropped when nothing needs overriding.
		if _, err := uc.Finalize(context.Background(), "q-1", "texto que nao sera persistido"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost conditional update maps to finalized error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
		sourceRepo := mock_interfaces.NewMockIPriceSourceRepository(ctrl)
		uc := NewQuotationUseCase(quotationRepo, itemRepo, sourceRepo)

		item := entities.Item{ID: "item-1", Name: "Caneta", Quantity: 10, QuantidadeFontes: 3, Median: floatPtr(100)}
		quotationRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusInProgress}, nil)
		itemRepo.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return([]entities.Item{item}, nil)
		sourceRepo.EXPECT().ListByItemID(gomock.Any(), "item-1").Return(includedSources("item-1", 100, 100, 100), nil)
		quotationRepo.EXPECT().Finalize(gomock.Any(), "q-1", "", gomock.Any()).Return(entities.Quotation{}, nil)

		_, err := uc.Finalize(context.Background(), "q-1", "")
		if !errors.Is(err, ErrQuotationFinalized) {
			t.Fatalf("expected ErrQuotationFinalized, got %v", err)
		}
	})
}

func TestQuotationUseCase_DeleteCascades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
	itemRepo := mock_interfaces.NewMockIItemRepository(ctrl)
	sourceRepo := mock_interfaces.NewMockIPriceSourceRepository(ctrl)
	uc := NewQuotationUseCase(quotationRepo, itemRepo, sourceRepo)

	quotationRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusInProgress}, nil)
	itemRepo.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return([]entities.Item{{ID: "item-1"}}, nil)
	sourceRepo.EXPECT().ListByItemID(gomock.Any(), "item-1").Return([]entities.PriceSource{{ID: "src-1"}, {ID: "src-2"}}, nil)

	gomock.InOrder(
		sourceRepo.EXPECT().Delete(gomock.Any(), "src-1").Return(nil),
		sourceRepo.EXPECT().Delete(gomock.Any(), "src-2").Return(nil),
		itemRepo.EXPECT().Delete(gomock.Any(), "item-1").Return(nil),
		quotationRepo.EXPECT().Delete(gomock.Any(), "q-1").Return(nil),
	)

	if err := uc.Delete(context.Background(), "q-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
