package handlers

import (
	"firstcab/internal/middleware"
	"firstcab/internal/models"
	"firstcab/internal/services"
	"firstcab/internal/utils"
	"firstcab/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingHandler struct {
	bookingService services.BookingService
}

func NewBookingHandler(bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// GetMyBookings lists the caller's bookings, newest first.
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	bookings, err := h.bookingService.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Bookings retrieved", bookings)
}

// GetBooking returns one booking. Non-admin callers only see their own.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	role, _ := c.Get(middleware.ContextUserRole)
	if booking.UserID != userID && role != string(models.UserRoleAdmin) {
		utils.NotFoundResponse(c, "Booking")
		return
	}

	utils.SuccessResponse(c, "Booking retrieved", booking)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.bookingService.CancelBooking(c.Request.Context(), id, userID); err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Booking cancelled successfully", nil)
}

// Admin endpoints

func (h *BookingHandler) ListBookings(c *gin.Context) {
	params := utils.ParsePagination(c)

	bookings, total, err := h.bookingService.ListBookings(c.Request.Context(), params)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Bookings retrieved", bookings, &utils.Meta{
		Pagination: utils.NewPaginationMeta(params, total),
	})
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	var request validators.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if fieldErrors := validators.Validate(&request); fieldErrors != nil {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	if err := h.bookingService.UpdateStatus(c.Request.Context(), id, models.BookingStatus(request.Status)); err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Booking status updated", nil)
}
