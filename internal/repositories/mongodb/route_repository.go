package mongodb

import (
	"context"
	"fmt"
	"time"

	"firstcab/internal/models"
	"firstcab/internal/repositories/interfaces"
	"firstcab/internal/services"
	"firstcab/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const routeListCacheKey = "routes:active"

type routeRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

func NewRouteRepository(db *mongo.Database, cache services.CacheService) interfaces.RouteRepository {
	return &routeRepository{
		collection: db.Collection(utils.CollectionRoutes),
		cache:      cache,
	}
}

// Basic CRUD operations
func (r *routeRepository) Create(ctx context.Context, route *models.Route) error {
	route.ID = primitive.NewObjectID()
	route.CreatedAt = time.Now()
	route.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, route)
	if err != nil {
		return fmt.Errorf("failed to create route: %w", err)
	}

	r.invalidateListCache(ctx)

	return nil
}

func (r *routeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Route, error) {
	var route models.Route
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&route)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	return &route, nil
}

func (r *routeRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update route: %w", err)
	}

	r.invalidateListCache(ctx)

	return nil
}

func (r *routeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete route: %w", err)
	}

	r.invalidateListCache(ctx)

	return nil
}

// Listing
func (r *routeRepository) GetAll(ctx context.Context) ([]*models.Route, error) {
	return r.find(ctx, bson.M{})
}

func (r *routeRepository) GetActive(ctx context.Context) ([]*models.Route, error) {
	// Try cache first
	if r.cache != nil {
		var routes []*models.Route
		if err := r.cache.Get(ctx, routeListCacheKey, &routes); err == nil {
			return routes, nil
		}
	}

	routes, err := r.find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Set(ctx, routeListCacheKey, routes, utils.RouteCacheTTL)
	}

	return routes, nil
}

func (r *routeRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Route, int64, error) {
	filter := params.SearchFilter("from", "to")

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count routes: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.FindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list routes: %w", err)
	}
	defer cursor.Close(ctx)

	var routes []*models.Route
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, 0, fmt.Errorf("failed to decode routes: %w", err)
	}

	return routes, total, nil
}

// Lookup
func (r *routeRepository) GetByEndpoints(ctx context.Context, from, to string) (*models.Route, error) {
	var route models.Route
	err := r.collection.FindOne(ctx, bson.M{"from": from, "to": to}).Decode(&route)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get route by endpoints: %w", err)
	}

	return &route, nil
}

func (r *routeRepository) find(ctx context.Context, filter bson.M) ([]*models.Route, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find routes: %w", err)
	}
	defer cursor.Close(ctx)

	var routes []*models.Route
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode routes: %w", err)
	}

	return routes, nil
}

func (r *routeRepository) invalidateListCache(ctx context.Context) {
	if r.cache != nil {
		r.cache.Delete(ctx, routeListCacheKey)
	}
}
