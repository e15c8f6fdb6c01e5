package interfaces

import (
	"context"

	"firstcab/internal/models"
	"firstcab/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RouteRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, route *models.Route) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Route, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Listing
	GetAll(ctx context.Context) ([]*models.Route, error)
	GetActive(ctx context.Context) ([]*models.Route, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Route, int64, error)

	// Lookup
	GetByEndpoints(ctx context.Context, from, to string) (*models.Route, error)
}
