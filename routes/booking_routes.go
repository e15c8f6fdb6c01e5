package routes

import (
	"firstcab/internal/handlers"
	"firstcab/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes sets up booking routes
func SetupBookingRoutes(r *gin.RouterGroup, bookingHandler *handlers.BookingHandler, jwtSecret string) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.AuthRequired(jwtSecret))
	{
		bookings.GET("", bookingHandler.GetMyBookings)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.PUT("/:id/cancel", bookingHandler.CancelBooking)
	}

	admin := r.Group("/admin/bookings")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("", bookingHandler.ListBookings)
		admin.PUT("/:id/status", bookingHandler.UpdateStatus)
	}
}
