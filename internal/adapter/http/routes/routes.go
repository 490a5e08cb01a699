package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "pesquisa_precos/docs" // This will be auto-generated
	"pesquisa_precos/internal/adapter/http/handlers"
	repository2 "pesquisa_precos/internal/adapter/persistence/repository"
	"pesquisa_precos/internal/infrastructure/cache"
	"pesquisa_precos/internal/infrastructure/database"
	"pesquisa_precos/internal/infrastructure/portal"
	"pesquisa_precos/internal/usecase"
	"pesquisa_precos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	itemRepo := repository2.NewItemDynamoRepository(ddb)
	sourceRepo := repository2.NewPriceSourceDynamoRepository(ddb)

	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, itemRepo, sourceRepo)
	itemUseCase := usecase.NewItemUseCase(itemRepo, sourceRepo, quotationRepo)
	sourceUseCase := usecase.NewSourceUseCase(sourceRepo, itemRepo)

	var portalGateway interfaces.IPriceRecordGateway
	gw, err := portal.NewPortalGateway(os.Getenv("PORTAL_BASE_URL"))
	if err != nil {
		log.Printf("Portal gateway not configured: %v", err)
	} else {
		portalGateway = gw
	}

	searchUseCase := usecase.NewSearchUseCase(portalGateway, newReferenceCache())

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	itemHandler := handlers.NewItemHandler(itemUseCase)
	sourceHandler := handlers.NewSourceHandler(sourceUseCase)
	searchHandler := handlers.NewSearchHandler(searchUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, quotationHandler, itemHandler, sourceHandler, searchHandler)
}

// newReferenceCache prefers Redis and falls back to the in-process cache so
// reference data keeps being served either way.
func newReferenceCache() interfaces.IReferenceCache {
	redisCache, err := cache.NewRedisCache(context.Background())
	if err != nil {
		log.Printf("Redis cache not configured, using in-memory cache: %v", err)
		return cache.NewMemoryCache()
	}
	return redisCache
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
