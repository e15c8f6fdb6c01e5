package interfaces

import (
	"context"

	"firstcab/internal/models"
	"firstcab/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Status transitions refuse to move a booking out of a terminal state.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error
	Cancel(ctx context.Context, id primitive.ObjectID) error

	// Listing, newest first
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error)
	GetAll(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error)
	GetByStatus(ctx context.Context, status models.BookingStatus, params *utils.PaginationParams) ([]*models.Booking, int64, error)

	// Dashboard counters
	CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error)
}
