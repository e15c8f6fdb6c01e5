package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"firstcab/internal/models"
	"firstcab/internal/repositories/interfaces"
	"firstcab/internal/store"
	"firstcab/internal/utils"
	"firstcab/pkg/logger"
	"firstcab/pkg/maps"
	"firstcab/pkg/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RouteService interface {
	CreateRoute(ctx context.Context, route *models.Route) error
	GetRoute(ctx context.Context, id primitive.ObjectID) (*models.Route, error)
	GetActiveRoutes(ctx context.Context) ([]*models.Route, error)
	ListRoutes(ctx context.Context, params *utils.PaginationParams) ([]*models.Route, int64, error)
	UpdateRoute(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) error
	DeleteRoute(ctx context.Context, id primitive.ObjectID) error
	UploadImage(ctx context.Context, id primitive.ObjectID, reader io.Reader) (string, error)
}

type routeService struct {
	routeRepo interfaces.RouteRepository
	estimator maps.DistanceEstimator
	storage   storage.Uploader
	store     *store.Store
	logger    *logger.Logger
}

func NewRouteService(routeRepo interfaces.RouteRepository, estimator maps.DistanceEstimator, storage storage.Uploader, store *store.Store, logger *logger.Logger) RouteService {
	return &routeService{
		routeRepo: routeRepo,
		estimator: estimator,
		storage:   storage,
		store:     store,
		logger:    logger,
	}
}

// CreateRoute persists a route, autofilling distance and duration from the
// maps provider when the admin left them blank.
func (s *routeService) CreateRoute(ctx context.Context, route *models.Route) error {
	if s.estimator != nil && (route.Distance == 0 || route.Duration == "") {
		estimate, err := s.estimator.EstimateRoute(ctx, route.From, route.To)
		if err != nil {
			s.logger.WithError(err).WithFields(map[string]interface{}{
				"from": route.From,
				"to":   route.To,
			}).Warn("Route distance estimation failed")
		} else {
			if route.Distance == 0 {
				route.Distance = estimate.DistanceKm
			}
			if route.Duration == "" {
				route.Duration = estimate.Duration
			}
		}
	}

	if err := s.routeRepo.Create(ctx, route); err != nil {
		return utils.PersistenceError(err)
	}

	s.logger.WithFields(map[string]interface{}{
		"route_id": route.ID.Hex(),
		"from":     route.From,
		"to":       route.To,
	}).Info("Route created")

	return nil
}

func (s *routeService) GetRoute(ctx context.Context, id primitive.ObjectID) (*models.Route, error) {
	return s.routeRepo.GetByID(ctx, id)
}

func (s *routeService) GetActiveRoutes(ctx context.Context) ([]*models.Route, error) {
	s.store.RoutesPending()

	routes, err := s.routeRepo.GetActive(ctx)
	if err != nil {
		s.store.RoutesRejected(err.Error())
		return nil, err
	}

	s.store.RoutesFulfilled(routes)

	return routes, nil
}

func (s *routeService) ListRoutes(ctx context.Context, params *utils.PaginationParams) ([]*models.Route, int64, error) {
	return s.routeRepo.List(ctx, params)
}

func (s *routeService) UpdateRoute(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return s.routeRepo.Update(ctx, id, updates)
}

func (s *routeService) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	return s.routeRepo.Update(ctx, id, map[string]interface{}{"active": active})
}

func (s *routeService) DeleteRoute(ctx context.Context, id primitive.ObjectID) error {
	return s.routeRepo.Delete(ctx, id)
}

// UploadImage normalizes a route image, stores it and records its URL on
// the route.
func (s *routeService) UploadImage(ctx context.Context, id primitive.ObjectID, reader io.Reader) (string, error) {
	if s.storage == nil {
		return "", fmt.Errorf("%s: storage not configured", utils.ErrFileUploadFailed)
	}

	if _, err := s.routeRepo.GetByID(ctx, id); err != nil {
		return "", err
	}

	normalized, err := utils.NormalizeImage(reader, utils.MaxImageWidth, utils.MaxImageHeight)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("routes/%s/%d.jpg", id.Hex(), time.Now().Unix())
	url, err := s.storage.Put(ctx, &storage.Object{
		Key:         key,
		Body:        normalized,
		ContentType: "image/jpeg",
		Size:        int64(normalized.Len()),
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", utils.ErrFileUploadFailed, err)
	}

	if err := s.routeRepo.Update(ctx, id, map[string]interface{}{"image_url": url}); err != nil {
		return "", utils.PersistenceError(err)
	}

	return url, nil
}
