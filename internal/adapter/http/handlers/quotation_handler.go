package handlers

import (
	"errors"
	"io"
	"net/http"

	request "pesquisa_precos/internal/adapter/http/dto/request"
	response "pesquisa_precos/internal/adapter/http/dto/response"
	"pesquisa_precos/internal/usecase"
	"pesquisa_precos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles HTTP requests for price-research quotations:
// creation, the evaluated project view, validation, the compliance checklist
// and finalization.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), payload.ResolveName(), payload.Description, payload.ProcessNumber)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(q))
}

// GetQuotation returns the project view: the quotation, its items and the
// running total.
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	q, items, err := h.usecase.GetByID(c.Request.Context(), c.Param("quotation_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotationDetails(q, items))
}

func (h *QuotationHandler) ValidateQuotation(c *gin.Context) {
	result, err := h.usecase.Validate(c.Request.Context(), c.Param("quotation_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *QuotationHandler) GetChecklist(c *gin.Context) {
	cl, err := h.usecase.Checklist(c.Request.Context(), c.Param("quotation_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, cl)
}

// FinalizeQuotation accepts an empty body; the justification is only required
// when the checklist carries warnings.
func (h *QuotationHandler) FinalizeQuotation(c *gin.Context) {
	var payload request.FinalizeQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Finalize(c.Request.Context(), c.Param("quotation_id"), payload.Justification)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("quotation_id")); err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidQuotationName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationFinalized):
		return pkg.NewDomainErrorSimple("QUOTATION_FINALIZED", "Quotation is already finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrChecklistBlocking):
		return pkg.NewDomainErrorSimple("CHECKLIST_BLOCKING", "Checklist has blocking issues", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFinalizationJustificationTooShort):
		return pkg.NewDomainErrorSimple("JUSTIFICATION_TOO_SHORT", "Finalization justification must have at least 20 characters", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
