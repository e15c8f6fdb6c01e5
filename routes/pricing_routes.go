package routes

import (
	"firstcab/internal/handlers"
	"firstcab/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupPricingRoutes sets up routes for the pricing catalog
func SetupPricingRoutes(r *gin.RouterGroup, pricingHandler *handlers.PricingHandler, jwtSecret string) {
	// Public aggregated catalog
	r.GET("/pricing", pricingHandler.GetCatalog)

	admin := r.Group("/admin/pricing")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("", pricingHandler.ListPricing)
		admin.POST("", pricingHandler.CreatePricing)
		admin.GET("/:id", pricingHandler.GetPricing)
		admin.PUT("/:id", pricingHandler.UpdatePricing)
		admin.DELETE("/:id", pricingHandler.DeletePricing)
	}
}
