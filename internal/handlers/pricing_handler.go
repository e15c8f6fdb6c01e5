package handlers

import (
	"firstcab/internal/models"
	"firstcab/internal/services"
	"firstcab/internal/utils"
	"firstcab/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PricingHandler struct {
	pricingService services.PricingService
}

func NewPricingHandler(pricingService services.PricingService) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
	}
}

// GetCatalog serves the aggregated pricing page payload.
func (h *PricingHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.pricingService.GetCatalog(c.Request.Context())
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Pricing catalog retrieved", catalog)
}

// Admin endpoints

func (h *PricingHandler) ListPricing(c *gin.Context) {
	params := utils.ParsePagination(c)

	rows, total, err := h.pricingService.ListPricing(c.Request.Context(), params)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Pricing retrieved", rows, &utils.Meta{
		Pagination: utils.NewPaginationMeta(params, total),
	})
}

func (h *PricingHandler) GetPricing(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid pricing ID")
		return
	}

	pricing, err := h.pricingService.GetPricing(c.Request.Context(), id)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Pricing retrieved", pricing)
}

func (h *PricingHandler) CreatePricing(c *gin.Context) {
	var request validators.CreatePricingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if fieldErrors := validators.Validate(&request); fieldErrors != nil {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	pricing := &models.Pricing{
		RouteFrom:  request.RouteFrom,
		RouteTo:    request.RouteTo,
		CarType:    request.CarType,
		CarModel:   request.CarModel,
		Capacity:   request.Capacity,
		Luggage:    request.Luggage,
		TripType:   models.TripType(request.TripType),
		Price:      request.Price,
		PricePerKm: request.PricePerKm,
		MinKm:      request.MinKm,
		ImageURL:   request.ImageURL,
		Features:   request.Features,
	}

	if request.RouteID != "" {
		routeID, err := primitive.ObjectIDFromHex(request.RouteID)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid route ID")
			return
		}
		pricing.RouteID = routeID
	}

	if err := h.pricingService.CreatePricing(c.Request.Context(), pricing); err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Pricing created successfully", pricing)
}

func (h *PricingHandler) UpdatePricing(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid pricing ID")
		return
	}

	var request validators.UpdatePricingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if fieldErrors := validators.Validate(&request); fieldErrors != nil {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	updates := map[string]interface{}{}
	if request.CarModel != nil {
		updates["car_model"] = *request.CarModel
	}
	if request.Capacity != nil {
		updates["capacity"] = *request.Capacity
	}
	if request.Luggage != nil {
		updates["luggage"] = *request.Luggage
	}
	if request.Price != nil {
		updates["price"] = *request.Price
	}
	if request.PricePerKm != nil {
		updates["price_per_km"] = *request.PricePerKm
	}
	if request.MinKm != nil {
		updates["min_km"] = *request.MinKm
	}
	if request.ImageURL != nil {
		updates["image_url"] = *request.ImageURL
	}
	if request.Features != nil {
		updates["features"] = request.Features
	}

	if len(updates) == 0 {
		utils.BadRequestResponse(c, "No fields to update")
		return
	}

	if err := h.pricingService.UpdatePricing(c.Request.Context(), id, updates); err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Pricing updated successfully", nil)
}

func (h *PricingHandler) DeletePricing(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid pricing ID")
		return
	}

	if err := h.pricingService.DeletePricing(c.Request.Context(), id); err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Pricing deleted successfully", nil)
}
