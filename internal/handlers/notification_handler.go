package handlers

import (
	"firstcab/internal/middleware"
	"firstcab/internal/services"
	"firstcab/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationHandler struct {
	notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) GetMyNotifications(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	params := utils.ParsePagination(c)

	notifications, total, err := h.notificationService.GetUserNotifications(c.Request.Context(), userID, params)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	unread, err := h.notificationService.CountUnread(c.Request.Context(), userID)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Notifications retrieved", gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	}, &utils.Meta{
		Pagination: utils.NewPaginationMeta(params, total),
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid notification ID")
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id, userID); err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Notification marked read", nil)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.notificationService.MarkAllRead(c.Request.Context(), userID); err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "All notifications marked read", nil)
}
