package services

import (
	"context"
	"encoding/json"
	"testing"

	"firstcab/internal/config"
	"firstcab/internal/models"
	"firstcab/internal/store"
	"firstcab/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type paymentFixture struct {
	paymentRepo   *fakePaymentRepo
	bookingRepo   *fakeBookingRepo
	gateway       *fakeGateway
	notifications *fakeNotificationService
	store         *store.Store
	service       PaymentService
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	log := newTestLogger(t)
	st := store.New()
	paymentRepo := newFakePaymentRepo()
	bookingRepo := newFakeBookingRepo()
	gateway := &fakeGateway{}
	notifications := &fakeNotificationService{}

	bookingService := NewBookingService(bookingRepo, st, log)

	cfg := &config.PaymentConfig{
		Currency:    "INR",
		DisplayName: "Firstcab",
		Description: "Cab booking",
		ThemeColor:  "#F37254",
	}

	return &paymentFixture{
		paymentRepo:   paymentRepo,
		bookingRepo:   bookingRepo,
		gateway:       gateway,
		notifications: notifications,
		store:         st,
		service:       NewPaymentService(paymentRepo, bookingService, notifications, gateway, cfg, st, log),
	}
}

func testUser() *models.User {
	return &models.User{
		ID:          primitive.NewObjectID(),
		Email:       "rider@example.com",
		DisplayName: "Test Rider",
		Role:        models.UserRoleCustomer,
	}
}

func testBookingDetails() models.BookingDetails {
	return models.BookingDetails{
		TripType: models.TripTypeOneWay,
		From:     "Delhi",
		To:       "Agra",
		CarType:  "Sedan",
		Date:     "2026-09-01",
		Time:     "09:00",
	}
}

func TestInitiatePaymentCreatesPendingWithSnapshot(t *testing.T) {
	f := newPaymentFixture(t)
	user := testUser()

	result, err := f.service.InitiatePayment(context.Background(), user, "₹2,500.00", models.TripTypeOneWay, testBookingDetails())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.PaymentID)
	require.NotNil(t, result.Checkout)
	assert.Equal(t, "rzp_test_key", result.Checkout.Key)
	assert.Equal(t, "order_test_1", result.Checkout.OrderID)
	assert.Equal(t, int64(250000), result.Checkout.Amount)
	assert.Equal(t, "INR", result.Checkout.Currency)
	assert.Equal(t, "Test Rider", result.Checkout.PrefillName)
	assert.Equal(t, "rider@example.com", result.Checkout.PrefillEmail)

	id, err := primitive.ObjectIDFromHex(result.PaymentID)
	require.NoError(t, err)
	stored, err := f.paymentRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, stored.Status)
	assert.Equal(t, int64(250000), stored.Amount)
	assert.Equal(t, "Agra", stored.BookingDetails.To)
	assert.Equal(t, user.ID, stored.UserID)

	snapshot := f.store.Snapshot()
	require.Len(t, snapshot.Payments.Items, 1)
	assert.True(t, snapshot.Payments.CreateSuccess)
	assert.False(t, snapshot.Payments.Loading)
}

func TestInitiatePaymentRejectsUnauthenticated(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.service.InitiatePayment(context.Background(), nil, "₹100", models.TripTypeOneWay, testBookingDetails())
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)

	_, err = f.service.InitiatePayment(context.Background(), &models.User{}, "₹100", models.TripTypeOneWay, testBookingDetails())
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)

	assert.Equal(t, 0, f.paymentRepo.count())
	assert.Equal(t, 0, f.gateway.orders)

	snapshot := f.store.Snapshot()
	assert.Empty(t, snapshot.Payments.Items)
	assert.False(t, snapshot.Payments.Loading)
	assert.Empty(t, snapshot.Payments.Err)
}

func TestInitiatePaymentRejectsBadAmount(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.service.InitiatePayment(context.Background(), testUser(), "not money", models.TripTypeOneWay, testBookingDetails())
	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Equal(t, 0, f.paymentRepo.count())
}

func TestInitiatePaymentGatewayFailure(t *testing.T) {
	f := newPaymentFixture(t)
	f.gateway.failCreateOrder = true

	_, err := f.service.InitiatePayment(context.Background(), testUser(), "₹500", models.TripTypeOneWay, testBookingDetails())
	assert.ErrorIs(t, err, utils.ErrGatewayUnavailable)

	assert.Equal(t, 0, f.paymentRepo.count())

	snapshot := f.store.Snapshot()
	assert.False(t, snapshot.Payments.Loading)
	assert.NotEmpty(t, snapshot.Payments.Err)
}

func settledPayment(t *testing.T, f *paymentFixture) (owner, paymentID primitive.ObjectID) {
	t.Helper()
	user := testUser()
	result, err := f.service.InitiatePayment(context.Background(), user, "₹1,200.50", models.TripTypeOneWay, testBookingDetails())
	require.NoError(t, err)
	id, err := primitive.ObjectIDFromHex(result.PaymentID)
	require.NoError(t, err)
	return user.ID, id
}

func TestHandleSuccessCreatesLinkedBooking(t *testing.T) {
	f := newPaymentFixture(t)
	owner, id := settledPayment(t, f)

	booking, err := f.service.HandleSuccess(context.Background(), owner, id, "pay_abc", validSignature, "token-123")
	require.NoError(t, err)
	require.NotNil(t, booking)

	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, models.BookingPaymentStatusPaid, booking.PaymentStatus)
	assert.InDelta(t, 1200.50, booking.Amount, 0.001)
	assert.Equal(t, "pay_abc", booking.RazorpayPaymentID)
	require.NotNil(t, booking.PaymentID)
	assert.Equal(t, id, *booking.PaymentID)

	settled, err := f.paymentRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, settled.Status)
	assert.Equal(t, "pay_abc", settled.RazorpayPaymentID)
	require.NotNil(t, settled.BookingID)
	assert.Equal(t, booking.ID, *settled.BookingID)

	assert.Equal(t, 1, f.bookingRepo.count())
	require.Len(t, f.notifications.bookingsCreated, 1)
	assert.Equal(t, booking.ID, f.notifications.bookingsCreated[0].ID)

	snapshot := f.store.Snapshot()
	require.Len(t, snapshot.Bookings.Items, 1)
	assert.True(t, snapshot.Bookings.CreateSuccess)
}

func TestHandleSuccessRejectsBadSignature(t *testing.T) {
	f := newPaymentFixture(t)
	owner, id := settledPayment(t, f)

	_, err := f.service.HandleSuccess(context.Background(), owner, id, "pay_abc", "forged", "token-123")
	assert.ErrorIs(t, err, utils.ErrValidation)

	stored, err := f.paymentRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, stored.Status)
	assert.Equal(t, 0, f.bookingRepo.count())
	assert.Empty(t, f.notifications.bookingsCreated)
}

func TestHandleSuccessSettlesOnce(t *testing.T) {
	f := newPaymentFixture(t)
	owner, id := settledPayment(t, f)

	_, err := f.service.HandleSuccess(context.Background(), owner, id, "pay_abc", validSignature, "token-123")
	require.NoError(t, err)

	_, err = f.service.HandleSuccess(context.Background(), owner, id, "pay_abc", validSignature, "token-123")
	assert.ErrorIs(t, err, utils.ErrAlreadySettled)

	assert.Equal(t, 1, f.bookingRepo.count())
	assert.Len(t, f.notifications.bookingsCreated, 1)
}

func TestHandleSuccessUnknownPayment(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.service.HandleSuccess(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "pay_abc", validSignature, "")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestHandleFailureMarksPaymentFailed(t *testing.T) {
	f := newPaymentFixture(t)
	owner, id := settledPayment(t, f)

	failed, err := f.service.HandleFailure(context.Background(), owner, id, "card declined", "pay_abc")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, failed.Status)
	assert.Equal(t, "card declined", failed.FailureReason)

	assert.Equal(t, 0, f.bookingRepo.count())
	require.Len(t, f.notifications.paymentsFailed, 1)
	assert.Equal(t, id, f.notifications.paymentsFailed[0].ID)

	_, err = f.service.HandleSuccess(context.Background(), owner, id, "pay_abc", validSignature, "")
	assert.ErrorIs(t, err, utils.ErrAlreadySettled)
}

func TestHandleDismissalLeavesPaymentPending(t *testing.T) {
	f := newPaymentFixture(t)
	owner, id := settledPayment(t, f)

	err := f.service.HandleDismissal(context.Background(), owner, id)
	assert.ErrorIs(t, err, utils.ErrPaymentCancelled)

	stored, err := f.paymentRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, stored.Status)
	assert.Nil(t, stored.BookingID)
	assert.Equal(t, 0, f.bookingRepo.count())
}

func TestVerifyPaymentRequiresGatewayTransaction(t *testing.T) {
	f := newPaymentFixture(t)
	owner, id := settledPayment(t, f)

	_, err := f.service.VerifyPayment(context.Background(), id)
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = f.service.HandleSuccess(context.Background(), owner, id, "pay_abc", validSignature, "")
	require.NoError(t, err)

	verified, err := f.service.VerifyPayment(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "pay_abc", verified.PaymentID)
	assert.Equal(t, "captured", verified.Status)
}

func TestListPaymentsDrivesStore(t *testing.T) {
	f := newPaymentFixture(t)
	settledPayment(t, f)

	payments, total, err := f.service.ListPayments(context.Background(), &utils.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, payments, 1)

	snapshot := f.store.Snapshot()
	assert.Len(t, snapshot.Payments.Items, 1)
	assert.False(t, snapshot.Payments.Loading)
}

func TestSettlementCallbacksRequireOwnership(t *testing.T) {
	f := newPaymentFixture(t)
	owner, id := settledPayment(t, f)
	stranger := primitive.NewObjectID()

	_, err := f.service.HandleFailure(context.Background(), stranger, id, "card declined", "pay_abc")
	assert.ErrorIs(t, err, utils.ErrNotFound)

	err = f.service.HandleDismissal(context.Background(), stranger, id)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = f.service.HandleSuccess(context.Background(), stranger, id, "pay_abc", validSignature, "")
	assert.ErrorIs(t, err, utils.ErrNotFound)

	stored, err := f.paymentRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, stored.Status)
	assert.Equal(t, 0, f.bookingRepo.count())

	booking, err := f.service.HandleSuccess(context.Background(), owner, id, "pay_abc", validSignature, "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
}

func webhookBody(t *testing.T, event, orderID, paymentID, errorDescription string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"event": event,
		"payload": map[string]interface{}{
			"payment": map[string]interface{}{
				"entity": map[string]interface{}{
					"id":                paymentID,
					"order_id":          orderID,
					"error_description": errorDescription,
				},
			},
		},
	})
	require.NoError(t, err)
	return body
}

func TestHandleWebhookCapturedCreatesBooking(t *testing.T) {
	f := newPaymentFixture(t)
	_, id := settledPayment(t, f)

	stored, err := f.paymentRepo.GetByID(context.Background(), id)
	require.NoError(t, err)

	body := webhookBody(t, "payment.captured", stored.RazorpayOrderID, "pay_hook", "")
	require.NoError(t, f.service.HandleWebhook(context.Background(), body, validSignature))

	settled, err := f.paymentRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, settled.Status)
	assert.Equal(t, "pay_hook", settled.RazorpayPaymentID)
	require.NotNil(t, settled.BookingID)
	assert.Equal(t, 1, f.bookingRepo.count())

	// Redelivery of the same event is acknowledged without a second booking.
	require.NoError(t, f.service.HandleWebhook(context.Background(), body, validSignature))
	assert.Equal(t, 1, f.bookingRepo.count())
}

func TestHandleWebhookFailedMarksPayment(t *testing.T) {
	f := newPaymentFixture(t)
	_, id := settledPayment(t, f)

	stored, err := f.paymentRepo.GetByID(context.Background(), id)
	require.NoError(t, err)

	body := webhookBody(t, "payment.failed", stored.RazorpayOrderID, "pay_hook", "card declined")
	require.NoError(t, f.service.HandleWebhook(context.Background(), body, validSignature))

	failed, err := f.paymentRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, failed.Status)
	assert.Equal(t, "card declined", failed.FailureReason)
	require.Len(t, f.notifications.paymentsFailed, 1)

	// A late captured event for the same order cannot revive it.
	captured := webhookBody(t, "payment.captured", stored.RazorpayOrderID, "pay_hook", "")
	require.NoError(t, f.service.HandleWebhook(context.Background(), captured, validSignature))
	assert.Equal(t, 0, f.bookingRepo.count())
}

func TestHandleWebhookRejectsBadSignature(t *testing.T) {
	f := newPaymentFixture(t)
	_, id := settledPayment(t, f)

	stored, err := f.paymentRepo.GetByID(context.Background(), id)
	require.NoError(t, err)

	body := webhookBody(t, "payment.captured", stored.RazorpayOrderID, "pay_hook", "")
	err = f.service.HandleWebhook(context.Background(), body, "forged")
	assert.ErrorIs(t, err, utils.ErrValidation)

	pending, err := f.paymentRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, pending.Status)
}

func TestHandleWebhookUnknownOrder(t *testing.T) {
	f := newPaymentFixture(t)

	body := webhookBody(t, "payment.captured", "order_missing", "pay_hook", "")
	err := f.service.HandleWebhook(context.Background(), body, validSignature)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestHandleWebhookIgnoresOtherEvents(t *testing.T) {
	f := newPaymentFixture(t)
	_, id := settledPayment(t, f)

	stored, err := f.paymentRepo.GetByID(context.Background(), id)
	require.NoError(t, err)

	body := webhookBody(t, "refund.processed", stored.RazorpayOrderID, "pay_hook", "")
	require.NoError(t, f.service.HandleWebhook(context.Background(), body, validSignature))

	untouched, err := f.paymentRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, untouched.Status)
}
