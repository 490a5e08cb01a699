package routes

import (
	"pesquisa_precos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations    = "/quotations"
	PathItems         = "/items"
	PathSources       = "/sources"
	PathSearch        = "/search"
	PathReferenceData = "/reference-data"
)

func addPricingRoutes(
	rg *gin.RouterGroup,
	quotationHandler *handlers.QuotationHandler,
	itemHandler *handlers.ItemHandler,
	sourceHandler *handlers.SourceHandler,
	searchHandler *handlers.SearchHandler,
) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("/:quotation_id", quotationHandler.GetQuotation)
		quotations.GET("/:quotation_id/validation", quotationHandler.ValidateQuotation)
		quotations.GET("/:quotation_id/checklist", quotationHandler.GetChecklist)
		quotations.POST("/:quotation_id/finalize", quotationHandler.FinalizeQuotation)
		quotations.DELETE("/:quotation_id", quotationHandler.DeleteQuotation)

		quotations.POST("/:quotation_id/items", itemHandler.CreateItem)
	}

	items := rg.Group(PathItems)
	{
		items.GET("/:item_id", itemHandler.GetItemDetails)
		items.POST("/:item_id/sources", itemHandler.LinkSources)
		items.DELETE("/:item_id/sources/:source_id", itemHandler.UnlinkSource)
		items.DELETE("/:item_id", itemHandler.DeleteItem)
	}

	sources := rg.Group(PathSources)
	{
		sources.PATCH("/:source_id/exclude", sourceHandler.ExcludeSource)
		sources.PATCH("/:source_id/include", sourceHandler.IncludeSource)
	}

	search := rg.Group(PathSearch)
	{
		search.GET("/price-records", searchHandler.SearchPriceRecords)
	}

	referenceData := rg.Group(PathReferenceData)
	{
		referenceData.GET("/ufs", searchHandler.ListUFs)
		referenceData.GET("/ufs/:uf/municipalities", searchHandler.ListMunicipalities)
	}
}
