package handlers

import (
	"errors"
	"log"
	"net/http"

	request "pesquisa_precos/internal/adapter/http/dto/request"
	response "pesquisa_precos/internal/adapter/http/dto/response"
	"pesquisa_precos/internal/usecase"
	"pesquisa_precos/pkg"

	"github.com/gin-gonic/gin"
)

// SourceHandler handles the inclusion state machine of price sources:
// exclude-with-justification and re-include. Both return the recomputed
// median of the owning item.

type SourceHandler struct {
	usecase usecase.ISourceUseCase
}

func NewSourceHandler(uc usecase.ISourceUseCase) *SourceHandler {
	return &SourceHandler{usecase: uc}
}

func (h *SourceHandler) ExcludeSource(c *gin.Context) {
	sourceID := c.Param("source_id")
	var payload request.ExcludeSourceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_SOURCE_INPUT", "Invalid source payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	median, err := h.usecase.Exclude(c.Request.Context(), sourceID, payload.Justification)
	if err != nil {
		appErr := mapSourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[source][handler] excluded source_id=%s", sourceID)

	c.JSON(http.StatusOK, response.MedianResponse{Median: median})
}

func (h *SourceHandler) IncludeSource(c *gin.Context) {
	sourceID := c.Param("source_id")

	median, err := h.usecase.Include(c.Request.Context(), sourceID)
	if err != nil {
		appErr := mapSourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[source][handler] included source_id=%s", sourceID)

	c.JSON(http.StatusOK, response.MedianResponse{Median: median})
}

func mapSourceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSourceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExclusionJustificationTooShort):
		return pkg.NewDomainErrorSimple("JUSTIFICATION_TOO_SHORT", "Exclusion justification must have at least 10 characters", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSourceNotFound):
		return pkg.NewDomainErrorSimple("SOURCE_NOT_FOUND", "Source not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSourceAlreadyExcluded):
		return pkg.NewDomainErrorSimple("SOURCE_ALREADY_EXCLUDED", "Source is already excluded", http.StatusConflict)
	case errors.Is(err, usecase.ErrSourceAlreadyIncluded):
		return pkg.NewDomainErrorSimple("SOURCE_ALREADY_INCLUDED", "Source is already included", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
