package interfaces

import (
	"context"

	"firstcab/internal/models"
	"firstcab/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PricingRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, pricing *models.Pricing) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Pricing, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Listing
	GetAll(ctx context.Context) ([]*models.Pricing, error)
	GetByTripType(ctx context.Context, tripType models.TripType) ([]*models.Pricing, error)
	GetByRouteID(ctx context.Context, routeID primitive.ObjectID) ([]*models.Pricing, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Pricing, int64, error)
}
