package handlers

import (
	"io"

	"firstcab/internal/middleware"
	"firstcab/internal/models"
	"firstcab/internal/services"
	"firstcab/internal/utils"
	"firstcab/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Webhook payloads are small JSON events; anything larger is garbage.
const maxWebhookBody = 1 << 20

type PaymentHandler struct {
	paymentService services.PaymentService
	userService    services.UserService
}

func NewPaymentHandler(paymentService services.PaymentService, userService services.UserService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		userService:    userService,
	}
}

// InitiatePayment creates a gateway order and a pending payment carrying
// the booking snapshot, returning everything the checkout UI needs.
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var request validators.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if fieldErrors := validators.Validate(&request); fieldErrors != nil {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	details := models.BookingDetails{
		TripType: models.TripType(request.TripType),
		From:     request.Details.From,
		To:       request.Details.To,
		CarType:  request.Details.CarType,
		Date:     request.Details.Date,
		Time:     request.Details.Time,
		Days:     request.Details.Days,
		KmLimit:  request.Details.KmLimit,
	}

	result, err := h.paymentService.InitiatePayment(c.Request.Context(), user, request.Amount, models.TripType(request.TripType), details)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Payment initiated", result)
}

// HandleSuccess settles the payment and creates the confirmed booking.
func (h *PaymentHandler) HandleSuccess(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	paymentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid payment ID")
		return
	}

	var request validators.PaymentSuccessRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if fieldErrors := validators.Validate(&request); fieldErrors != nil {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	booking, err := h.paymentService.HandleSuccess(
		c.Request.Context(),
		userID,
		paymentID,
		request.RazorpayPaymentID,
		request.RazorpaySignature,
		middleware.GetBearerToken(c),
	)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Payment successful, booking confirmed", booking)
}

// HandleFailure records a gateway-reported failure. No booking is created.
func (h *PaymentHandler) HandleFailure(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	paymentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid payment ID")
		return
	}

	var request validators.PaymentFailureRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if fieldErrors := validators.Validate(&request); fieldErrors != nil {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	failed, err := h.paymentService.HandleFailure(c.Request.Context(), userID, paymentID, request.Reason, request.RazorpayPaymentID)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Payment failure recorded", failed)
}

// HandleDismissal records that the user closed the checkout. The payment
// stays pending and the service reports the outcome through the error
// taxonomy, so every path answers with an error status: 409 for the
// cancellation itself, 404 for a missing or foreign payment.
func (h *PaymentHandler) HandleDismissal(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	paymentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid payment ID")
		return
	}

	utils.TaxonomyErrorResponse(c, h.paymentService.HandleDismissal(c.Request.Context(), userID, paymentID))
}

// HandleWebhook ingests gateway webhook deliveries. The route is public;
// the HMAC signature header is the authentication.
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		utils.BadRequestResponse(c, "Could not read webhook payload")
		return
	}

	if err := h.paymentService.HandleWebhook(c.Request.Context(), payload, c.GetHeader("X-Razorpay-Signature")); err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Webhook processed", nil)
}

func (h *PaymentHandler) GetMyPayments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	payments, err := h.paymentService.GetUserPayments(c.Request.Context(), userID)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Payments retrieved", payments)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid payment ID")
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	role, _ := c.Get(middleware.ContextUserRole)
	if payment.UserID != userID && role != string(models.UserRoleAdmin) {
		utils.NotFoundResponse(c, "Payment")
		return
	}

	utils.SuccessResponse(c, "Payment retrieved", payment)
}

// VerifyPayment cross-checks a payment against the gateway.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid payment ID")
		return
	}

	gatewayPayment, err := h.paymentService.VerifyPayment(c.Request.Context(), id)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Payment verified", gatewayPayment)
}

// Admin endpoint

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	params := utils.ParsePagination(c)

	payments, total, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		utils.TaxonomyErrorResponse(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Payments retrieved", payments, &utils.Meta{
		Pagination: utils.NewPaginationMeta(params, total),
	})
}
