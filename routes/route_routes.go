package routes

import (
	"firstcab/internal/handlers"
	"firstcab/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRouteRoutes sets up routes for route catalog management
func SetupRouteRoutes(r *gin.RouterGroup, routeHandler *handlers.RouteHandler, jwtSecret string) {
	// Public customer-facing list
	r.GET("/routes", routeHandler.GetActiveRoutes)

	admin := r.Group("/admin/routes")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("", routeHandler.ListRoutes)
		admin.POST("", routeHandler.CreateRoute)
		admin.GET("/:id", routeHandler.GetRoute)
		admin.PUT("/:id", routeHandler.UpdateRoute)
		admin.PATCH("/:id/active", routeHandler.SetActive)
		admin.DELETE("/:id", routeHandler.DeleteRoute)
		admin.POST("/:id/image", routeHandler.UploadImage)
	}
}
