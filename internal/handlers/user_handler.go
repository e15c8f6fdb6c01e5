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

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var request validators.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if fieldErrors := validators.Validate(&request); fieldErrors != nil {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	updates := map[string]interface{}{}
	if request.DisplayName != nil {
		updates["display_name"] = *request.DisplayName
	}
	if request.PhotoURL != nil {
		updates["photo_url"] = *request.PhotoURL
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), userID, updates); err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Profile updated successfully", nil)
}

// Admin endpoints

func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.ParsePagination(c)

	users, total, err := h.userService.ListUsers(c.Request.Context(), params)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Users retrieved", users, &utils.Meta{
		Pagination: utils.NewPaginationMeta(params, total),
	})
}

func (h *UserHandler) SetRole(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	var request validators.SetUserRoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if fieldErrors := validators.Validate(&request); fieldErrors != nil {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	if err := h.userService.SetRole(c.Request.Context(), id, models.UserRole(request.Role)); err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "User role updated", nil)
}
