package handlers

import (
	"firstcab/internal/middleware"
	"firstcab/internal/services"
	"firstcab/internal/utils"
	"firstcab/internal/validators"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates an email/password account and signs the user in.
func (h *AuthHandler) Register(c *gin.Context) {
	var request validators.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if fieldErrors := validators.Validate(&request); fieldErrors != nil {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), request.Email, request.Password, request.DisplayName)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Account created successfully", result)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var request validators.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if fieldErrors := validators.Validate(&request); fieldErrors != nil {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Logged in successfully", result)
}

func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var request validators.GoogleLoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if fieldErrors := validators.Validate(&request); fieldErrors != nil {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	result, err := h.authService.GoogleLogin(c.Request.Context(), request.AccessToken)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Logged in successfully", result)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	user, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Profile retrieved", user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Logged out successfully", nil)
}
