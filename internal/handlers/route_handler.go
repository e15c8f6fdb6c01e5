package handlers

import (
	"firstcab/internal/models"
	"firstcab/internal/services"
	"firstcab/internal/utils"
	"firstcab/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RouteHandler struct {
	routeService services.RouteService
}

func NewRouteHandler(routeService services.RouteService) *RouteHandler {
	return &RouteHandler{
		routeService: routeService,
	}
}

// GetActiveRoutes serves the customer-facing route list. Inactive routes
// never appear here.
func (h *RouteHandler) GetActiveRoutes(c *gin.Context) {
	routes, err := h.routeService.GetActiveRoutes(c.Request.Context())
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Routes retrieved", routes)
}

// Admin endpoints

func (h *RouteHandler) ListRoutes(c *gin.Context) {
	params := utils.ParsePagination(c)

	routes, total, err := h.routeService.ListRoutes(c.Request.Context(), params)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Routes retrieved", routes, &utils.Meta{
		Pagination: utils.NewPaginationMeta(params, total),
	})
}

func (h *RouteHandler) GetRoute(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid route ID")
		return
	}

	route, err := h.routeService.GetRoute(c.Request.Context(), id)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Route retrieved", route)
}

func (h *RouteHandler) CreateRoute(c *gin.Context) {
	var request validators.CreateRouteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if fieldErrors := validators.Validate(&request); fieldErrors != nil {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}

	route := &models.Route{
		From:     request.From,
		To:       request.To,
		Distance: request.Distance,
		Duration: request.Duration,
		Active:   active,
		ImageURL: request.ImageURL,
	}

	if err := h.routeService.CreateRoute(c.Request.Context(), route); err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Route created successfully", route)
}

func (h *RouteHandler) UpdateRoute(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid route ID")
		return
	}

	var request validators.UpdateRouteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if fieldErrors := validators.Validate(&request); fieldErrors != nil {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	updates := map[string]interface{}{}
	if request.From != nil {
		updates["from"] = *request.From
	}
	if request.To != nil {
		updates["to"] = *request.To
	}
	if request.Distance != nil {
		updates["distance"] = *request.Distance
	}
	if request.Duration != nil {
		updates["duration"] = *request.Duration
	}
	if request.ImageURL != nil {
		updates["image_url"] = *request.ImageURL
	}

	if len(updates) == 0 {
		utils.BadRequestResponse(c, "No fields to update")
		return
	}

	if err := h.routeService.UpdateRoute(c.Request.Context(), id, updates); err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Route updated successfully", nil)
}

func (h *RouteHandler) SetActive(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid route ID")
		return
	}

	var request validators.SetRouteActiveRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if fieldErrors := validators.Validate(&request); fieldErrors != nil {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	if err := h.routeService.SetActive(c.Request.Context(), id, *request.Active); err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Route updated successfully", nil)
}

func (h *RouteHandler) DeleteRoute(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid route ID")
		return
	}

	if err := h.routeService.DeleteRoute(c.Request.Context(), id); err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Route deleted successfully", nil)
}

// UploadImage accepts a multipart image and stores it for the route.
func (h *RouteHandler) UploadImage(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid route ID")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "Image file required")
		return
	}

	if fileHeader.Size > utils.MaxImageSize {
		utils.BadRequestResponse(c, "Image exceeds the size limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Could not read image file")
		return
	}
	defer file.Close()

	url, err := h.routeService.UploadImage(c.Request.Context(), id, file)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Image uploaded successfully", gin.H{"image_url": url})
}
