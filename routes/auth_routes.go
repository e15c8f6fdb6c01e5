package routes

import (
	"firstcab/internal/handlers"
	"firstcab/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up authentication routes
func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler, jwtSecret string) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/google", authHandler.GoogleLogin)
	}

	session := r.Group("/auth")
	session.Use(middleware.AuthRequired(jwtSecret))
	{
		session.GET("/me", authHandler.Me)
		session.POST("/logout", authHandler.Logout)
	}
}
