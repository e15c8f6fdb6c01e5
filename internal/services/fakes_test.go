package services

import (
	"context"
	"errors"
	"sync"

	"firstcab/internal/models"
	"firstcab/internal/utils"
	"firstcab/pkg/payment"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes for the repository and provider interfaces the workflow
// services depend on.

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[primitive.ObjectID]*models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[primitive.ObjectID]*models.Payment)}
}

func (f *fakePaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	if p.Status == "" {
		p.Status = models.PaymentStatusPending
	}
	clone := *p
	f.payments[p.ID] = &clone
	return nil
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}

func (f *fakePaymentRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.payments, id)
	return nil
}

func (f *fakePaymentRepo) MarkSuccess(ctx context.Context, id primitive.ObjectID, razorpayPaymentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[id]
	if !ok {
		return utils.ErrNotFound
	}
	if p.Status != models.PaymentStatusPending {
		return utils.ErrAlreadySettled
	}
	p.Status = models.PaymentStatusSuccess
	p.RazorpayPaymentID = razorpayPaymentID
	return nil
}

func (f *fakePaymentRepo) MarkFailed(ctx context.Context, id primitive.ObjectID, reason, razorpayPaymentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[id]
	if !ok {
		return utils.ErrNotFound
	}
	if p.Status != models.PaymentStatusPending {
		return utils.ErrAlreadySettled
	}
	p.Status = models.PaymentStatusFailed
	p.FailureReason = reason
	p.RazorpayPaymentID = razorpayPaymentID
	return nil
}

func (f *fakePaymentRepo) LinkBooking(ctx context.Context, id, bookingID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[id]
	if !ok {
		return utils.ErrNotFound
	}
	p.BookingID = &bookingID
	return nil
}

func (f *fakePaymentRepo) GetByOrderID(ctx context.Context, razorpayOrderID string) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.payments {
		if p.RazorpayOrderID == razorpayOrderID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakePaymentRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*models.Payment
	for _, p := range f.payments {
		if p.UserID == userID {
			clone := *p
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (f *fakePaymentRepo) GetAll(ctx context.Context, params *utils.PaginationParams) ([]*models.Payment, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*models.Payment
	for _, p := range f.payments {
		clone := *p
		result = append(result, &clone)
	}
	return result, int64(len(result)), nil
}

func (f *fakePaymentRepo) GetByStatus(ctx context.Context, status models.PaymentStatus, params *utils.PaginationParams) ([]*models.Payment, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*models.Payment
	for _, p := range f.payments {
		if p.Status == status {
			clone := *p
			result = append(result, &clone)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakePaymentRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payments)
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[primitive.ObjectID]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[primitive.ObjectID]*models.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = primitive.NewObjectID()
	clone := *b
	f.bookings[b.ID] = &clone
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return utils.ErrNotFound
	}
	if b.IsTerminal() {
		return utils.ErrNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id primitive.ObjectID) error {
	return f.UpdateStatus(ctx, id, models.BookingStatusCancelled)
}

func (f *fakeBookingRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			clone := *b
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) GetAll(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*models.Booking
	for _, b := range f.bookings {
		clone := *b
		result = append(result, &clone)
	}
	return result, int64(len(result)), nil
}

func (f *fakeBookingRepo) GetByStatus(ctx context.Context, status models.BookingStatus, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*models.Booking
	for _, b := range f.bookings {
		if b.Status == status {
			clone := *b
			result = append(result, &clone)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeBookingRepo) CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[models.BookingStatus]int64)
	for _, b := range f.bookings {
		counts[b.Status]++
	}
	return counts, nil
}

func (f *fakeBookingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

const validSignature = "valid-signature"

type fakeGateway struct {
	failCreateOrder bool
	orders          int
}

func (f *fakeGateway) CreateOrder(ctx context.Context, request *payment.OrderRequest) (*payment.Order, error) {
	if f.failCreateOrder {
		return nil, errors.New("gateway down")
	}
	f.orders++
	return &payment.Order{
		OrderID:  "order_test_1",
		Status:   "created",
		Amount:   request.Amount,
		Currency: request.Currency,
	}, nil
}

func (f *fakeGateway) VerifyPaymentSignature(orderID, paymentID, signature string) error {
	if signature != validSignature {
		return errors.New("signature mismatch")
	}
	return nil
}

func (f *fakeGateway) VerifyWebhook(payload []byte, signature string) error {
	if signature != validSignature {
		return errors.New("webhook signature mismatch")
	}
	return nil
}

func (f *fakeGateway) FetchPayment(ctx context.Context, paymentID string) (*payment.GatewayPayment, error) {
	return &payment.GatewayPayment{PaymentID: paymentID, Status: "captured"}, nil
}

func (f *fakeGateway) KeyID() string {
	return "rzp_test_key"
}

type fakeNotificationService struct {
	mu              sync.Mutex
	bookingsCreated []*models.Booking
	paymentsFailed  []*models.Payment
}

func (f *fakeNotificationService) NotifyBookingCreated(ctx context.Context, booking *models.Booking, bearerToken string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookingsCreated = append(f.bookingsCreated, booking)
}

func (f *fakeNotificationService) NotifyPaymentFailed(ctx context.Context, payment *models.Payment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paymentsFailed = append(f.paymentsFailed, payment)
}

func (f *fakeNotificationService) GetUserNotifications(ctx context.Context, userID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Notification, int64, error) {
	return nil, 0, nil
}

func (f *fakeNotificationService) MarkRead(ctx context.Context, id, userID primitive.ObjectID) error {
	return nil
}

func (f *fakeNotificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	return nil
}

func (f *fakeNotificationService) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return 0, nil
}
