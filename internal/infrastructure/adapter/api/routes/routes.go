package routes

import (
	coreport "github.com/fintrack-app/fintrack-backend/internal/domain/port/core"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/api/handler"
	"github.com/fintrack-app/fintrack-backend/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	transactionHandler *handler.TransactionHandler,
	dashboardHandler *handler.DashboardHandler,
	profileImageHandler *handler.ProfileImageHandler,
	imageHandler *handler.ImageHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Check)

	api := router.Group("/api")
	{
		api.POST("/login", authHandler.Login)

		api.GET("/dashboard", dashboardHandler.Summary)

		transactions := api.Group("/transactions")
		{
			transactions.POST("/add", transactionHandler.Add)
			transactions.POST("/update", transactionHandler.Update)
			transactions.POST("/delete", transactionHandler.Delete)
		}

		profileImage := api.Group("/profile-image")
		{
			profileImage.POST("/upload", profileImageHandler.Upload)
			profileImage.POST("/delete", profileImageHandler.Delete)
		}

		api.GET("/images", imageHandler.Serve)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
