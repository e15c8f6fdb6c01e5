package routes

import (
	"firstcab/internal/handlers"
	"firstcab/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up the back-office dashboard routes
func SetupAdminRoutes(r *gin.RouterGroup, adminHandler *handlers.AdminHandler, jwtSecret string) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("/state", adminHandler.GetState)
		admin.GET("/dashboard", adminHandler.GetDashboard)
	}
}
