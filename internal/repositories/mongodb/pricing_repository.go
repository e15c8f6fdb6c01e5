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

const pricingListCacheKey = "pricing:all"

type pricingRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

func NewPricingRepository(db *mongo.Database, cache services.CacheService) interfaces.PricingRepository {
	return &pricingRepository{
		collection: db.Collection(utils.CollectionPricing),
		cache:      cache,
	}
}

// Basic CRUD operations
func (r *pricingRepository) Create(ctx context.Context, pricing *models.Pricing) error {
	pricing.ID = primitive.NewObjectID()
	pricing.CreatedAt = time.Now()
	pricing.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, pricing)
	if err != nil {
		return fmt.Errorf("failed to create pricing: %w", err)
	}

	r.invalidateListCache(ctx)

	return nil
}

func (r *pricingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Pricing, error) {
	var pricing models.Pricing
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pricing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pricing: %w", err)
	}

	return &pricing, nil
}

func (r *pricingRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update pricing: %w", err)
	}

	r.invalidateListCache(ctx)

	return nil
}

func (r *pricingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete pricing: %w", err)
	}

	r.invalidateListCache(ctx)

	return nil
}

// Listing
func (r *pricingRepository) GetAll(ctx context.Context) ([]*models.Pricing, error) {
	// Try cache first
	if r.cache != nil {
		var rows []*models.Pricing
		if err := r.cache.Get(ctx, pricingListCacheKey, &rows); err == nil {
			return rows, nil
		}
	}

	rows, err := r.find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Set(ctx, pricingListCacheKey, rows, utils.PricingCacheTTL)
	}

	return rows, nil
}

func (r *pricingRepository) GetByTripType(ctx context.Context, tripType models.TripType) ([]*models.Pricing, error) {
	return r.find(ctx, bson.M{"trip_type": tripType})
}

func (r *pricingRepository) GetByRouteID(ctx context.Context, routeID primitive.ObjectID) ([]*models.Pricing, error) {
	return r.find(ctx, bson.M{"route_id": routeID})
}

func (r *pricingRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Pricing, int64, error) {
	filter := params.SearchFilter("car_type", "car_model", "route_from", "route_to")

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count pricing: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.FindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pricing: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []*models.Pricing
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("failed to decode pricing: %w", err)
	}

	return rows, total, nil
}

func (r *pricingRepository) find(ctx context.Context, filter bson.M) ([]*models.Pricing, error) {
	// Stable order so later duplicates win during aggregation.
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find pricing: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []*models.Pricing
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode pricing: %w", err)
	}

	return rows, nil
}

func (r *pricingRepository) invalidateListCache(ctx context.Context) {
	if r.cache != nil {
		r.cache.Delete(ctx, pricingListCacheKey)
	}
}
