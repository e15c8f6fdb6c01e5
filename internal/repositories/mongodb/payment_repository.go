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

type paymentRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

func NewPaymentRepository(db *mongo.Database, cache services.CacheService) interfaces.PaymentRepository {
	return &paymentRepository{
		collection: db.Collection(utils.CollectionPayments),
		cache:      cache,
	}
}

// Basic CRUD operations
func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = time.Now()
	if payment.Status == "" {
		payment.Status = models.PaymentStatusPending
	}

	_, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
	// Try cache first, settled payments only
	if payment := r.getPaymentFromCache(ctx, id.Hex()); payment != nil {
		return payment, nil
	}

	var payment models.Payment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	r.cachePayment(ctx, &payment)

	return &payment, nil
}

func (r *paymentRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	r.invalidatePaymentCache(ctx, id.Hex())

	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	r.invalidatePaymentCache(ctx, id.Hex())

	return nil
}

// Settlement. The status filter makes each payment settle at most once:
// a second settlement attempt matches nothing and reports ErrAlreadySettled.
func (r *paymentRepository) MarkSuccess(ctx context.Context, id primitive.ObjectID, razorpayPaymentID string) error {
	now := time.Now()
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": models.PaymentStatusPending},
		bson.M{"$set": bson.M{
			"status":              models.PaymentStatusSuccess,
			"razorpay_payment_id": razorpayPaymentID,
			"completed_at":        now,
			"updated_at":          now,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark payment success: %w", err)
	}
	if result.MatchedCount == 0 {
		return r.settlementConflict(ctx, id)
	}

	r.invalidatePaymentCache(ctx, id.Hex())

	return nil
}

func (r *paymentRepository) MarkFailed(ctx context.Context, id primitive.ObjectID, reason, razorpayPaymentID string) error {
	now := time.Now()
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": models.PaymentStatusPending},
		bson.M{"$set": bson.M{
			"status":              models.PaymentStatusFailed,
			"failure_reason":      reason,
			"razorpay_payment_id": razorpayPaymentID,
			"completed_at":        now,
			"updated_at":          now,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark payment failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return r.settlementConflict(ctx, id)
	}

	r.invalidatePaymentCache(ctx, id.Hex())

	return nil
}

func (r *paymentRepository) LinkBooking(ctx context.Context, id, bookingID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"booking_id": bookingID, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to link booking to payment: %w", err)
	}

	r.invalidatePaymentCache(ctx, id.Hex())

	return nil
}

// Gateway lookup
func (r *paymentRepository) GetByOrderID(ctx context.Context, razorpayOrderID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.collection.FindOne(ctx, bson.M{"razorpay_order_id": razorpayOrderID}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment by order ID: %w", err)
	}

	return &payment, nil
}

// Listing, newest first
func (r *paymentRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []*models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}

	return payments, nil
}

func (r *paymentRepository) GetAll(ctx context.Context, params *utils.PaginationParams) ([]*models.Payment, int64, error) {
	filter := params.SearchFilter("user_email", "user_name", "razorpay_order_id")
	return r.findWithPagination(ctx, filter, params)
}

func (r *paymentRepository) GetByStatus(ctx context.Context, status models.PaymentStatus, params *utils.PaginationParams) ([]*models.Payment, int64, error) {
	return r.findWithPagination(ctx, bson.M{"status": status}, params)
}

func (r *paymentRepository) findWithPagination(ctx context.Context, filter bson.M, params *utils.PaginationParams) ([]*models.Payment, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.FindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []*models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, 0, fmt.Errorf("failed to decode payments: %w", err)
	}

	return payments, total, nil
}

// settlementConflict distinguishes an unknown payment from one that was
// already settled.
func (r *paymentRepository) settlementConflict(ctx context.Context, id primitive.ObjectID) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to check payment settlement: %w", err)
	}
	if count == 0 {
		return utils.ErrNotFound
	}
	return utils.ErrAlreadySettled
}

// Cache helpers
func (r *paymentRepository) cachePayment(ctx context.Context, payment *models.Payment) {
	if r.cache != nil && payment.IsSettled() {
		cacheKey := fmt.Sprintf("payment:%s", payment.ID.Hex())
		r.cache.Set(ctx, cacheKey, payment, utils.PaymentCacheTTL)
	}
}

func (r *paymentRepository) getPaymentFromCache(ctx context.Context, paymentID string) *models.Payment {
	if r.cache == nil {
		return nil
	}

	cacheKey := fmt.Sprintf("payment:%s", paymentID)
	var payment models.Payment
	if err := r.cache.Get(ctx, cacheKey, &payment); err != nil {
		return nil
	}

	return &payment
}

func (r *paymentRepository) invalidatePaymentCache(ctx context.Context, paymentID string) {
	if r.cache != nil {
		cacheKey := fmt.Sprintf("payment:%s", paymentID)
		r.cache.Delete(ctx, cacheKey)
	}
}
