package interfaces

import (
	"context"

	"firstcab/internal/models"
	"firstcab/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Lookup operations
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetBySocialID(ctx context.Context, provider models.AuthProvider, socialID string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Admin listing
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.User, int64, error)
	GetByRole(ctx context.Context, role models.UserRole, params *utils.PaginationParams) ([]*models.User, int64, error)

	// Session tracking
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID) error
}
