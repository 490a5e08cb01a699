package handlers

import (
	"errors"
	"net/http"

	request "pesquisa_precos/internal/adapter/http/dto/request"
	response "pesquisa_precos/internal/adapter/http/dto/response"
	"pesquisa_precos/internal/usecase"
	"pesquisa_precos/pkg"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles the procurement-portal price search and the UF /
// municipality reference data.

type SearchHandler struct {
	usecase usecase.ISearchUseCase
}

func NewSearchHandler(uc usecase.ISearchUseCase) *SearchHandler {
	return &SearchHandler{usecase: uc}
}

func (h *SearchHandler) SearchPriceRecords(c *gin.Context) {
	var payload request.SearchRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_SEARCH_INPUT", "Invalid search parameters", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	records, total, err := h.usecase.Search(c.Request.Context(), payload.ToQuery(), payload.ToFilterState())
	if err != nil {
		appErr := mapSearchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSearchResult(records, total))
}

func (h *SearchHandler) ListUFs(c *gin.Context) {
	ufs, err := h.usecase.ListUFs(c.Request.Context())
	if err != nil {
		appErr := mapSearchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, ufs)
}

func (h *SearchHandler) ListMunicipalities(c *gin.Context) {
	municipalities, err := h.usecase.ListMunicipalities(c.Request.Context(), c.Param("uf"))
	if err != nil {
		appErr := mapSearchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, municipalities)
}

func mapSearchError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSearchTerm), errors.Is(err, usecase.ErrInvalidUF):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("SEARCH_UNAVAILABLE", "Price search is temporarily unavailable", err, http.StatusBadGateway)
	}
}
