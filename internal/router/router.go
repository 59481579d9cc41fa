// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/turhanbey/presetshop-backend/internal/config"
	"github.com/turhanbey/presetshop-backend/internal/handlers"
	"github.com/turhanbey/presetshop-backend/internal/middleware"
	"github.com/turhanbey/presetshop-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	catalogService := services.NewCatalogService(db, cfg)
	orderService := services.NewOrderService(db, cfg)
	settingsService := services.NewSettingsService(db)
	storageService := services.NewStorageService(cfg)
	authService, err := services.NewAuthService(db, cfg)
	if err != nil {
		return nil, err
	}

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService, settingsService, storageService)
	adminHandler := handlers.NewAdminHandler(settingsService, orderService, catalogService)
	authHandler := handlers.NewAuthHandler(authService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.Frontend.BaseURL))
	router.Use(middleware.I18nMiddleware())
	router.Use(middleware.GeneralRateLimit())
	router.Use(middleware.AuditLogMiddleware(db))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "presetshop-backend",
		})
	})

	v1 := router.Group("/v1")
	{
		// Public storefront
		v1.GET("/products", catalogHandler.ListProducts)
		v1.POST("/checkout", orderHandler.Checkout)
		v1.GET("/checkout/payment-methods", orderHandler.PaymentMethods)

		// Admin auth
		v1.POST("/admin/login", middleware.LoginRateLimit(), authHandler.Login)

		// Admin panel
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminRequired(db))
		{
			admin.POST("/logout", authHandler.Logout)
			admin.GET("/session", authHandler.Session)

			admin.POST("/products", catalogHandler.CreateProduct)
			admin.DELETE("/products/:id", catalogHandler.DeleteProduct)

			admin.GET("/orders", orderHandler.ListOrders)
			admin.PUT("/orders/:id/confirm", orderHandler.ConfirmOrder)
			admin.DELETE("/orders/:id", orderHandler.DeleteOrder)
			admin.GET("/orders/:id/download-link", orderHandler.DownloadLink)

			admin.GET("/settings", adminHandler.GetSettings)
			admin.PUT("/settings", adminHandler.SaveSettings)

			admin.GET("/dashboard/stats", adminHandler.DashboardStats)
		}
	}

	return router, nil
}
