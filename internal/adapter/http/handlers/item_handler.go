package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "pesquisa_precos/internal/adapter/http/dto/request"
	response "pesquisa_precos/internal/adapter/http/dto/response"
	"pesquisa_precos/internal/usecase"
	"pesquisa_precos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidItemPayload = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid item payload", http.StatusBadRequest)
)

// ItemHandler handles HTTP requests for quotation items and their linked
// price sources.

type ItemHandler struct {
	usecase usecase.IItemUseCase
}

func NewItemHandler(uc usecase.IItemUseCase) *ItemHandler {
	return &ItemHandler{usecase: uc}
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	var payload request.CreateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	it, err := h.usecase.AddItem(c.Request.Context(), c.Param("quotation_id"), usecase.NewItem{
		Name:        payload.Name,
		Description: payload.Description,
		Quantity:    payload.Quantity,
		Unit:        payload.Unit,
		SizeWeight:  payload.SizeWeight,
	})
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromItem(it))
}

// GetItemDetails returns the item with every linked source classified against
// the current median, plus the descriptive statistics.
func (h *ItemHandler) GetItemDetails(c *gin.Context) {
	details, err := h.usecase.GetDetails(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItemDetails(details))
}

// LinkSources links portal records to the item in order. Sources created
// before a failure stay linked; the error names the offending record so the
// caller can retry the remainder.
func (h *ItemHandler) LinkSources(c *gin.Context) {
	itemID := c.Param("item_id")
	var payload request.LinkSourcesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.LinkSources(c.Request.Context(), itemID, payload.ToRecords())
	if err != nil {
		log.Printf("[item][handler] link failed item_id=%s linked=%d failed_record_id=%s err=%v", itemID, len(result.Linked), result.FailedRecordID, err)
		appErr := mapLinkError(err, result)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLinkResult(result))
}

// UnlinkSource removes a source from the item and returns the recomputed
// median.
func (h *ItemHandler) UnlinkSource(c *gin.Context) {
	median, err := h.usecase.UnlinkSource(c.Request.Context(), c.Param("item_id"), c.Param("source_id"))
	if err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MedianResponse{Median: median})
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("item_id")); err != nil {
		appErr := mapItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapLinkError(err error, result usecase.LinkResult) *pkg.AppError {
	if errors.Is(err, usecase.ErrRecordWithoutValue) {
		msg := fmt.Sprintf("Record %s has no positive unit value; %d source(s) linked before the failure", result.FailedRecordID, len(result.Linked))
		return pkg.NewDomainErrorSimple("RECORD_WITHOUT_VALUE", msg, http.StatusUnprocessableEntity)
	}
	return mapItemError(err)
}

func mapItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID), errors.Is(err, usecase.ErrInvalidItemName),
		errors.Is(err, usecase.ErrInvalidItemQty), errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidSourceID), errors.Is(err, usecase.ErrNoRecordsToLink):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSourceNotFound):
		return pkg.NewDomainErrorSimple("SOURCE_NOT_FOUND", "Source not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationFinalized):
		return pkg.NewDomainErrorSimple("QUOTATION_FINALIZED", "Quotation is already finalized", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
