// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmall/catalog-backend/internal/config"
	"github.com/openmall/catalog-backend/internal/handlers"
	"github.com/openmall/catalog-backend/internal/middleware"
	"github.com/openmall/catalog-backend/internal/services"
)

func Initialize(catalogService *services.CatalogService, cfg *config.Config) *gin.Engine {
	storageService, _ := services.NewStorageService(cfg)

	productHandler := handlers.NewProductHandler(catalogService, storageService, cfg.Catalog.MaxPageSize)
	adminHandler := handlers.NewAdminHandler(catalogService)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)

			mutations := products.Group("")
			mutations.Use(middleware.WriteRateLimit())
			{
				mutations.POST("", productHandler.CreateProduct)
				mutations.PUT("/:id", productHandler.UpdateProduct)
				mutations.DELETE("/:id", productHandler.DeleteProduct)
				mutations.PUT("/:id/status", productHandler.UpdateProductStatus)
				mutations.POST("/reset-filters", productHandler.ResetFilters)
			}

			products.POST("/upload-images", middleware.UploadRateLimit(), productHandler.UploadProductImages)
		}

		suppliers := v1.Group("/suppliers")
		{
			suppliers.GET("/:id/products", productHandler.GetSupplierProducts)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.WriteRateLimit())
		{
			adminProducts := admin.Group("/products")
			{
				adminProducts.GET("/pending", adminHandler.GetPendingProducts)
				adminProducts.PUT("/:id/approve", adminHandler.ApproveProduct)
				adminProducts.PUT("/:id/reject", adminHandler.RejectProduct)
			}
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
