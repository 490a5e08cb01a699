package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pesquisa_precos/internal/adapter/http/handlers/mocks"
	"pesquisa_precos/internal/domain/entities"
	"pesquisa_precos/internal/domain/pricing"
	"pesquisa_precos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestItemHandler_CreateItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIItemUseCase(ctrl)
		h := NewItemHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:quotation_id/items", h.CreateItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/items", bytes.NewBufferString(`{"name":"Caneta"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("finalized quotation maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIItemUseCase(ctrl)
		h := NewItemHandler(uc)

		uc.EXPECT().AddItem(gomock.Any(), "q-1", gomock.Any()).Return(entities.Item{}, usecase.ErrQuotationFinalized)

		r := gin.New()
		r.POST("/v1/quotations/:quotation_id/items", h.CreateItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/items", bytes.NewBufferString(`{"name":"Caneta","quantity":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIItemUseCase(ctrl)
		h := NewItemHandler(uc)

		uc.EXPECT().AddItem(gomock.Any(), "q-1", usecase.NewItem{Name: "Caneta", Quantity: 10, Unit: "caixa"}).Return(entities.Item{
			ID: "item-1", QuotationID: "q-1", Name: "Caneta", Quantity: 10, Unit: "caixa",
		}, nil)

		r := gin.New()
		r.POST("/v1/quotations/:quotation_id/items", h.CreateItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/items", bytes.NewBufferString(`{"name":"Caneta","quantity":10,"unit":"caixa"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestItemHandler_GetItemDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIItemUseCase(ctrl)
	h := NewItemHandler(uc)

	median := 100.0
	uc.EXPECT().GetDetails(gomock.Any(), "item-1").Return(usecase.ItemDetails{
		Item: entities.Item{ID: "item-1", Name: "Caneta", Quantity: 10, Median: &median},
		Sources: []usecase.SourceDetail{
			{
				Source:         entities.PriceSource{ID: "src-1", UnitValue: 250, IncludedInCalculation: true},
				Classification: pricing.Classify(250, median),
			},
		},
		Stats: pricing.Stats{Mean: 250, IncludedCount: 1},
	}, nil)

	r := gin.New()
	r.GET("/v1/items/:item_id", h.GetItemDetails)

	req := httptest.NewRequest(http.MethodGet, "/v1/items/item-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Sources []struct {
			Classification struct {
				Category string `json:"category"`
			} `json:"classification"`
		} `json:"sources"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(resp.Sources) != 1 || resp.Sources[0].Classification.Category != "excessive" {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}

func TestItemHandler_LinkSources(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("partial failure maps to 422 naming the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIItemUseCase(ctrl)
		h := NewItemHandler(uc)

		uc.EXPECT().LinkSources(gomock.Any(), "item-1", gomock.Any()).Return(usecase.LinkResult{
			Linked:         []entities.PriceSource{{ID: "src-1"}},
			FailedRecordID: "rec-2",
		}, usecase.ErrRecordWithoutValue)

		r := gin.New()
		r.POST("/v1/items/:item_id/sources", h.LinkSources)

		body := `{"records":[{"external_id":"rec-1","unit_value":10},{"external_id":"rec-2"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/items/item-1/sources", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("rec-2")) {
			t.Fatalf("expected failed record named, body=%s", w.Body.String())
		}
	})

	t.Run("linked batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIItemUseCase(ctrl)
		h := NewItemHandler(uc)

		uc.EXPECT().LinkSources(gomock.Any(), "item-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, records []entities.PriceRecord) (usecase.LinkResult, error) {
				if len(records) != 1 || records[0].ExternalID != "rec-1" {
					t.Fatalf("unexpected records: %+v", records)
				}
				return usecase.LinkResult{Linked: []entities.PriceSource{{ID: "src-1", ItemID: "item-1"}}}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/items/:item_id/sources", h.LinkSources)

		body := `{"records":[{"external_id":"rec-1","unit_value":10,"reference_date":"2026-01-10"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/items/item-1/sources", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestItemHandler_UnlinkSource(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIItemUseCase(ctrl)
	h := NewItemHandler(uc)

	uc.EXPECT().UnlinkSource(gomock.Any(), "item-1", "src-1").Return(nil, nil)

	r := gin.New()
	r.DELETE("/v1/items/:item_id/sources/:source_id", h.UnlinkSource)

	req := httptest.NewRequest(http.MethodDelete, "/v1/items/item-1/sources/src-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
