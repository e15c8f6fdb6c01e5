package interfaces

import (
	"context"

	"firstcab/internal/models"
	"firstcab/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Settlement. Both succeed at most once per payment: they match on
	// status pending and return ErrAlreadySettled when the payment has
	// already reached a terminal state.
	MarkSuccess(ctx context.Context, id primitive.ObjectID, razorpayPaymentID string) error
	MarkFailed(ctx context.Context, id primitive.ObjectID, reason, razorpayPaymentID string) error

	// LinkBooking back-links the booking created after a successful
	// settlement.
	LinkBooking(ctx context.Context, id, bookingID primitive.ObjectID) error

	// Gateway lookup
	GetByOrderID(ctx context.Context, razorpayOrderID string) (*models.Payment, error)

	// Listing, newest first
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Payment, error)
	GetAll(ctx context.Context, params *utils.PaginationParams) ([]*models.Payment, int64, error)
	GetByStatus(ctx context.Context, status models.PaymentStatus, params *utils.PaginationParams) ([]*models.Payment, int64, error)
}
