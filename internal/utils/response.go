package utils

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint returns. Data and Error
// are mutually exclusive.
type APIResponse struct {
	Status    string      `json:"status"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Meta      *Meta       `json:"meta,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type Meta struct {
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Total      int64           `json:"total,omitempty"`
	Count      int             `json:"count,omitempty"`
}

func respondSuccess(c *gin.Context, statusCode int, message string, data interface{}, meta *Meta) {
	c.JSON(statusCode, APIResponse{
		Status:    StatusSuccess,
		Message:   message,
		Data:      data,
		Meta:      meta,
		Timestamp: time.Now(),
	})
}

func SuccessResponse(c *gin.Context, message string, data interface{}) {
	respondSuccess(c, http.StatusOK, message, data, nil)
}

func SuccessResponseWithMeta(c *gin.Context, message string, data interface{}, meta *Meta) {
	respondSuccess(c, http.StatusOK, message, data, meta)
}

func CreatedResponse(c *gin.Context, message string, data interface{}) {
	respondSuccess(c, http.StatusCreated, message, data, nil)
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	ErrorResponseWithDetails(c, statusCode, code, message, nil)
}

func ErrorResponseWithDetails(c *gin.Context, statusCode int, code, message string, details map[string]string) {
	c.JSON(statusCode, APIResponse{
		Status:    StatusError,
		Error:     &APIError{Code: code, Message: message, Details: details},
		Timestamp: time.Now(),
	})
}

func ValidationErrorResponse(c *gin.Context, errs map[string]string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", ErrValidationFailed, errs)
}

func InternalServerErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", ErrInternalServer)
}

func UnauthorizedResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", ErrUnauthorized)
}

func ForbiddenResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", ErrForbidden)
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", resource+" not found")
}

func ConflictResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusConflict, "CONFLICT", message)
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

// TaxonomyErrorResponse maps the workflow error taxonomy onto HTTP statuses.
func TaxonomyErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		ErrorResponse(c, http.StatusUnauthorized, "UNAUTHENTICATED", err.Error())
	case errors.Is(err, ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrGatewayUnavailable):
		ErrorResponse(c, http.StatusBadGateway, "GATEWAY_UNAVAILABLE", err.Error())
	case errors.Is(err, ErrPaymentCancelled):
		ErrorResponse(c, http.StatusConflict, "PAYMENT_CANCELLED", err.Error())
	case errors.Is(err, ErrGatewayFailure):
		ErrorResponse(c, http.StatusPaymentRequired, "GATEWAY_FAILURE", err.Error())
	case errors.Is(err, ErrAlreadySettled):
		ErrorResponse(c, http.StatusConflict, "ALREADY_SETTLED", err.Error())
	case errors.Is(err, ErrValidation):
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		ErrorResponse(c, http.StatusInternalServerError, "PERSISTENCE_ERROR", err.Error())
	}
}
