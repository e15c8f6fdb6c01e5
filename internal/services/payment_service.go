package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"firstcab/internal/config"
	"firstcab/internal/models"
	"firstcab/internal/repositories/interfaces"
	"firstcab/internal/store"
	"firstcab/internal/utils"
	"firstcab/pkg/logger"
	"firstcab/pkg/payment"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitiateResult is returned to the client so it can open the hosted
// checkout for the pending payment.
type InitiateResult struct {
	PaymentID string                   `json:"payment_id"`
	Checkout  *payment.CheckoutOptions `json:"checkout"`
}

type PaymentService interface {
	// InitiatePayment parses the display amount, creates a gateway order
	// and persists a pending payment carrying the booking snapshot. An
	// unauthenticated caller is rejected before anything is written.
	InitiatePayment(ctx context.Context, user *models.User, amount string, tripType models.TripType, details models.BookingDetails) (*InitiateResult, error)

	// Settlement callbacks, one per checkout outcome. Each payment settles
	// at most once, and only its owner may report an outcome: a payment
	// belonging to someone else is indistinguishable from a missing one.
	HandleSuccess(ctx context.Context, callerID, paymentID primitive.ObjectID, razorpayPaymentID, signature, bearerToken string) (*models.Booking, error)
	HandleFailure(ctx context.Context, callerID, paymentID primitive.ObjectID, reason, razorpayPaymentID string) (*models.Payment, error)
	HandleDismissal(ctx context.Context, callerID, paymentID primitive.ObjectID) error

	// HandleWebhook settles payments from signed gateway webhook events,
	// the server-side counterpart of the checkout callbacks.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error

	GetPayment(ctx context.Context, id primitive.ObjectID) (*models.Payment, error)
	GetUserPayments(ctx context.Context, userID primitive.ObjectID) ([]*models.Payment, error)
	VerifyPayment(ctx context.Context, id primitive.ObjectID) (*payment.GatewayPayment, error)

	// Admin listing
	ListPayments(ctx context.Context, params *utils.PaginationParams) ([]*models.Payment, int64, error)
}

type paymentService struct {
	paymentRepo         interfaces.PaymentRepository
	bookingService      BookingService
	notificationService NotificationService
	gateway             payment.Gateway
	config              *config.PaymentConfig
	store               *store.Store
	logger              *logger.Logger
}

func NewPaymentService(
	paymentRepo interfaces.PaymentRepository,
	bookingService BookingService,
	notificationService NotificationService,
	gateway payment.Gateway,
	config *config.PaymentConfig,
	store *store.Store,
	logger *logger.Logger,
) PaymentService {
	return &paymentService{
		paymentRepo:         paymentRepo,
		bookingService:      bookingService,
		notificationService: notificationService,
		gateway:             gateway,
		config:              config,
		store:               store,
		logger:              logger,
	}
}

func (s *paymentService) InitiatePayment(ctx context.Context, user *models.User, amount string, tripType models.TripType, details models.BookingDetails) (*InitiateResult, error) {
	if user == nil || user.ID.IsZero() {
		return nil, utils.ErrUnauthenticated
	}

	amountInPaise, err := utils.ParseAmountToMinorUnits(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrValidation, err)
	}

	s.store.PaymentsPending()

	order, err := s.gateway.CreateOrder(ctx, &payment.OrderRequest{
		Amount:   amountInPaise,
		Currency: s.config.Currency,
		Receipt:  fmt.Sprintf("rcpt_%s_%d", user.ID.Hex(), amountInPaise),
		Notes: map[string]interface{}{
			"trip_type": string(tripType),
			"from":      details.From,
			"to":        details.To,
		},
	})
	if err != nil {
		s.store.PaymentsRejected(utils.ErrGatewayUnavailable.Error())
		return nil, fmt.Errorf("%w: %v", utils.ErrGatewayUnavailable, err)
	}

	pending := &models.Payment{
		UserID:          user.ID,
		UserEmail:       user.Email,
		UserName:        user.DisplayName,
		Amount:          amountInPaise,
		Currency:        s.config.Currency,
		TripType:        tripType,
		BookingDetails:  details,
		Status:          models.PaymentStatusPending,
		RazorpayOrderID: order.OrderID,
	}

	if err := s.paymentRepo.Create(ctx, pending); err != nil {
		wrapped := utils.PersistenceError(err)
		s.store.PaymentsRejected(wrapped.Error())
		return nil, wrapped
	}

	s.store.PaymentCreated(pending)

	s.logger.LogPaymentEvent(pending.ID, "initiated", amountInPaise, s.config.Currency)

	return &InitiateResult{
		PaymentID: pending.ID.Hex(),
		Checkout: &payment.CheckoutOptions{
			Key:          s.gateway.KeyID(),
			OrderID:      order.OrderID,
			Amount:       amountInPaise,
			Currency:     s.config.Currency,
			Name:         s.config.DisplayName,
			Description:  s.config.Description,
			ThemeColor:   s.config.ThemeColor,
			PrefillName:  user.DisplayName,
			PrefillEmail: user.Email,
		},
	}, nil
}

// ownedPayment loads a payment and hides its existence from any caller
// other than its owner.
func (s *paymentService) ownedPayment(ctx context.Context, callerID, paymentID primitive.ObjectID) (*models.Payment, error) {
	record, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if record.UserID != callerID {
		s.logger.WithPaymentID(paymentID).WithUserID(callerID).Warn("Settlement attempt by non-owner")
		return nil, utils.ErrNotFound
	}
	return record, nil
}

// HandleSuccess verifies the gateway signature, settles the payment and
// creates the confirmed booking from the stored snapshot.
func (s *paymentService) HandleSuccess(ctx context.Context, callerID, paymentID primitive.ObjectID, razorpayPaymentID, signature, bearerToken string) (*models.Booking, error) {
	pending, err := s.ownedPayment(ctx, callerID, paymentID)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.VerifyPaymentSignature(pending.RazorpayOrderID, razorpayPaymentID, signature); err != nil {
		s.logger.WithPaymentID(paymentID).Warn("Payment signature verification failed")
		return nil, fmt.Errorf("%w: invalid payment signature", utils.ErrValidation)
	}

	return s.settle(ctx, pending, razorpayPaymentID, bearerToken)
}

// settle marks the payment successful and creates the confirmed booking
// from the stored snapshot. The settle and create writes are separate
// operations; a crash between them leaves a successful payment without a
// booking, surfaced by the missing back-link.
func (s *paymentService) settle(ctx context.Context, pending *models.Payment, razorpayPaymentID, bearerToken string) (*models.Booking, error) {
	if err := s.paymentRepo.MarkSuccess(ctx, pending.ID, razorpayPaymentID); err != nil {
		return nil, err
	}

	s.logger.LogPaymentEvent(pending.ID, "settled", pending.Amount, pending.Currency)

	booking := &models.Booking{
		UserID:            pending.UserID,
		UserEmail:         pending.UserEmail,
		UserName:          pending.UserName,
		TripType:          pending.TripType,
		From:              pending.BookingDetails.From,
		To:                pending.BookingDetails.To,
		CarType:           pending.BookingDetails.CarType,
		Date:              pending.BookingDetails.Date,
		Time:              pending.BookingDetails.Time,
		Days:              pending.BookingDetails.Days,
		KmLimit:           pending.BookingDetails.KmLimit,
		Amount:            utils.MinorToMajorUnits(pending.Amount),
		Status:            models.BookingStatusConfirmed,
		PaymentStatus:     models.BookingPaymentStatusPaid,
		PaymentID:         &pending.ID,
		RazorpayPaymentID: razorpayPaymentID,
	}

	if err := s.bookingService.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.LinkBooking(ctx, pending.ID, booking.ID); err != nil {
		s.logger.WithError(err).WithPaymentID(pending.ID).Error("Failed to back-link booking")
	}

	s.notificationService.NotifyBookingCreated(ctx, booking, bearerToken)

	return booking, nil
}

func (s *paymentService) HandleFailure(ctx context.Context, callerID, paymentID primitive.ObjectID, reason, razorpayPaymentID string) (*models.Payment, error) {
	if _, err := s.ownedPayment(ctx, callerID, paymentID); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.MarkFailed(ctx, paymentID, reason, razorpayPaymentID); err != nil {
		return nil, err
	}

	failed, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	s.logger.LogPaymentEvent(paymentID, "failed", failed.Amount, failed.Currency)

	s.notificationService.NotifyPaymentFailed(ctx, failed)

	return failed, nil
}

// HandleDismissal records that the user closed the checkout without paying.
// The pending payment is deliberately left as-is.
func (s *paymentService) HandleDismissal(ctx context.Context, callerID, paymentID primitive.ObjectID) error {
	if _, err := s.ownedPayment(ctx, callerID, paymentID); err != nil {
		return err
	}

	s.logger.WithPaymentID(paymentID).Info("Checkout dismissed by user")
	return utils.ErrPaymentCancelled
}

// webhookEvent is the slice of Razorpay's webhook payload the settlement
// paths consume.
type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID               string `json:"id"`
				OrderID          string `json:"order_id"`
				ErrorDescription string `json:"error_description"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandleWebhook ingests a gateway webhook delivery. The payload is
// trusted only after its HMAC signature checks out. Webhooks redeliver,
// so an already settled payment is treated as processed, not an error.
func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if err := s.gateway.VerifyWebhook(payload, signature); err != nil {
		s.logger.Warn("Webhook signature verification failed")
		return fmt.Errorf("%w: invalid webhook signature", utils.ErrValidation)
	}

	var event webhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("%w: malformed webhook payload", utils.ErrValidation)
	}

	entity := event.Payload.Payment.Entity
	if entity.OrderID == "" {
		return fmt.Errorf("%w: webhook event carries no order", utils.ErrValidation)
	}

	record, err := s.paymentRepo.GetByOrderID(ctx, entity.OrderID)
	if err != nil {
		return err
	}

	switch event.Event {
	case "payment.captured":
		_, err := s.settle(ctx, record, entity.ID, "")
		if errors.Is(err, utils.ErrAlreadySettled) {
			return nil
		}
		return err
	case "payment.failed":
		reason := entity.ErrorDescription
		if reason == "" {
			reason = "gateway reported failure"
		}
		if err := s.paymentRepo.MarkFailed(ctx, record.ID, reason, entity.ID); err != nil {
			if errors.Is(err, utils.ErrAlreadySettled) {
				return nil
			}
			return err
		}
		failed, err := s.paymentRepo.GetByID(ctx, record.ID)
		if err != nil {
			return err
		}
		s.logger.LogPaymentEvent(record.ID, "failed", failed.Amount, failed.Currency)
		s.notificationService.NotifyPaymentFailed(ctx, failed)
		return nil
	default:
		s.logger.WithField("event", event.Event).Debug("Ignoring webhook event")
		return nil
	}
}

func (s *paymentService) GetPayment(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *paymentService) GetUserPayments(ctx context.Context, userID primitive.ObjectID) ([]*models.Payment, error) {
	return s.paymentRepo.GetByUserID(ctx, userID)
}

// VerifyPayment cross-checks a settled payment against the gateway's view.
func (s *paymentService) VerifyPayment(ctx context.Context, id primitive.ObjectID) (*payment.GatewayPayment, error) {
	record, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if record.RazorpayPaymentID == "" {
		return nil, fmt.Errorf("%w: payment has no gateway transaction", utils.ErrValidation)
	}

	gatewayPayment, err := s.gateway.FetchPayment(ctx, record.RazorpayPaymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGatewayUnavailable, err)
	}

	return gatewayPayment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, params *utils.PaginationParams) ([]*models.Payment, int64, error) {
	s.store.PaymentsPending()

	payments, total, err := s.paymentRepo.GetAll(ctx, params)
	if err != nil {
		s.store.PaymentsRejected(err.Error())
		return nil, 0, err
	}

	s.store.PaymentsFulfilled(payments)

	return payments, total, nil
}
