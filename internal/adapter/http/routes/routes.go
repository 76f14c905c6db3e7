package routes

import (
	"net/http"
	"strconv"

	_ "billing_saas/docs" // swagger docs, generated
	"billing_saas/internal/adapter/http/handlers"
	"billing_saas/internal/adapter/persistence/repository"
	"billing_saas/internal/adapter/render"
	"billing_saas/internal/infrastructure/browser"
	"billing_saas/internal/infrastructure/database"
	"billing_saas/internal/infrastructure/storage"
	"billing_saas/internal/infrastructure/templates"
	"billing_saas/internal/logger"
	"billing_saas/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run wires the service together and starts the server.
func Run() {
	log := logger.WithComponent("http")
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		log.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	s3Client := storage.ConnectS3()

	snapshotRepo := repository.NewBillingDynamoRepository(ddb)
	documentStore := storage.NewS3DocumentStore(s3Client)

	// Each pipeline invocation owns its own engine session; the engine value
	// itself only carries configuration and is safe to share.
	engine := browser.NewChromiumEngine()
	invoiceRenderer := render.NewMustacheInvoiceRenderer(templates.NewFSTemplateSource())

	pdfUseCase := usecase.NewInvoicePdfUseCase(snapshotRepo, invoiceRenderer, engine, documentStore)
	summaryUseCase := usecase.NewFinancialSummaryUseCase(snapshotRepo)

	documentHandler := handlers.NewInvoiceDocumentHandler(pdfUseCase)
	summaryHandler := handlers.NewFinancialSummaryHandler(summaryUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, documentHandler, summaryHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	log := logger.WithComponent("http")
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
