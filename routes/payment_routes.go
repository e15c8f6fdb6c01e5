package routes

import (
	"firstcab/internal/handlers"
	"firstcab/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupPaymentRoutes sets up payment workflow routes
func SetupPaymentRoutes(r *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, jwtSecret string) {
	// Authenticated by the gateway's HMAC signature, not a bearer token.
	r.POST("/payments/webhook", paymentHandler.HandleWebhook)

	payments := r.Group("/payments")
	payments.Use(middleware.AuthRequired(jwtSecret))
	{
		payments.POST("/initiate", paymentHandler.InitiatePayment)
		payments.POST("/:id/success", paymentHandler.HandleSuccess)
		payments.POST("/:id/failure", paymentHandler.HandleFailure)
		payments.POST("/:id/dismiss", paymentHandler.HandleDismissal)
		payments.GET("", paymentHandler.GetMyPayments)
		payments.GET("/:id", paymentHandler.GetPayment)
		payments.GET("/:id/verify", paymentHandler.VerifyPayment)
	}

	admin := r.Group("/admin/payments")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("", paymentHandler.ListPayments)
	}
}
