package routes

import (
	"firstcab/internal/handlers"
	"firstcab/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up profile and admin user routes
func SetupUserRoutes(r *gin.RouterGroup, userHandler *handlers.UserHandler, notificationHandler *handlers.NotificationHandler, jwtSecret string) {
	users := r.Group("/users")
	users.Use(middleware.AuthRequired(jwtSecret))
	{
		users.PUT("/profile", userHandler.UpdateProfile)
	}

	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthRequired(jwtSecret))
	{
		notifications.GET("", notificationHandler.GetMyNotifications)
		notifications.PUT("/:id/read", notificationHandler.MarkRead)
		notifications.PUT("/read-all", notificationHandler.MarkAllRead)
	}

	admin := r.Group("/admin/users")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("", userHandler.ListUsers)
		admin.PUT("/:id/role", userHandler.SetRole)
	}
}
