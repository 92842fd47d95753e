package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"kharcha/ledger"
	"kharcha/middleware"
)

// SetupRouter sets up the router
func SetupRouter(store *ledger.Store, settings *ledger.Settings) *gin.Engine {
	router := gin.Default()

	// The mobile/web client calls this API cross-origin
	router.Use(cors.Default())

	// Serve Swagger UI at root path
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create handler
	handler := NewHandler(store, settings)

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware())
	{
		// Transaction CRUD and listing
		transactions := api.Group("/transactions")
		{
			transactions.POST("", handler.CreateTransaction)
			transactions.GET("", handler.ListTransactions)
			transactions.GET("/:id", handler.GetTransaction)
			transactions.PUT("/:id", handler.UpdateTransaction)
			transactions.DELETE("/:id", handler.DeleteTransaction)
		}

		// Derived totals and the monthly chart series
		summary := api.Group("/summary")
		{
			summary.GET("", handler.GetSummary)
			summary.GET("/monthly", handler.GetMonthlySummary)
		}

		// User preferences
		settingsGroup := api.Group("/settings")
		{
			settingsGroup.GET("/currency", handler.GetCurrency)
			settingsGroup.PUT("/currency", handler.SetCurrency)
			settingsGroup.GET("/theme", handler.GetTheme)
			settingsGroup.PUT("/theme", handler.SetTheme)
		}
	}

	return router
}
