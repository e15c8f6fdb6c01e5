package services

import (
	"context"

	"firstcab/internal/models"
	"firstcab/internal/repositories/interfaces"
	"firstcab/internal/store"
	"firstcab/internal/utils"
	"firstcab/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	// Admin operations
	ListUsers(ctx context.Context, params *utils.PaginationParams) ([]*models.User, int64, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role models.UserRole) error
}

type userService struct {
	userRepo interfaces.UserRepository
	store    *store.Store
	logger   *logger.Logger
}

func NewUserService(userRepo interfaces.UserRepository, store *store.Store, logger *logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		store:    store,
		logger:   logger,
	}
}

func (s *userService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile accepts only display name and photo changes.
func (s *userService) UpdateProfile(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	allowed := map[string]interface{}{}
	if name, ok := updates["display_name"]; ok {
		allowed["display_name"] = name
	}
	if photo, ok := updates["photo_url"]; ok {
		allowed["photo_url"] = photo
	}
	if len(allowed) == 0 {
		return nil
	}

	return s.userRepo.Update(ctx, id, allowed)
}

func (s *userService) ListUsers(ctx context.Context, params *utils.PaginationParams) ([]*models.User, int64, error) {
	s.store.UsersPending()

	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		s.store.UsersRejected(err.Error())
		return nil, 0, err
	}

	s.store.UsersFulfilled(users)

	return users, total, nil
}

func (s *userService) SetRole(ctx context.Context, id primitive.ObjectID, role models.UserRole) error {
	if err := s.userRepo.Update(ctx, id, map[string]interface{}{"role": role}); err != nil {
		return err
	}

	s.logger.LogUserAction(id, "role_changed", map[string]interface{}{"role": role})

	return nil
}
