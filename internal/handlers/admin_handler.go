package handlers

import (
	"firstcab/internal/services"
	"firstcab/internal/store"
	"firstcab/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the back-office dashboard endpoints.
type AdminHandler struct {
	store          *store.Store
	bookingService services.BookingService
}

func NewAdminHandler(store *store.Store, bookingService services.BookingService) *AdminHandler {
	return &AdminHandler{
		store:          store,
		bookingService: bookingService,
	}
}

// GetState returns a snapshot of the application state store.
func (h *AdminHandler) GetState(c *gin.Context) {
	utils.SuccessResponse(c, "State snapshot", h.store.Snapshot())
}

// GetDashboard returns the booking counters the dashboard header shows.
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	counts, err := h.bookingService.CountByStatus(c.Request.Context())
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Dashboard retrieved", gin.H{"booking_counts": counts})
}
