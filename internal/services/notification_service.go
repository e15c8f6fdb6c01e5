package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"firstcab/internal/config"
	"firstcab/internal/models"
	"firstcab/internal/repositories/interfaces"
	"firstcab/internal/utils"
	"firstcab/pkg/logger"
	"firstcab/pkg/push"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationService interface {
	// NotifyBookingCreated fans a new booking out to the back office. Every
	// delivery failure is logged and swallowed; the booking flow never sees
	// an error from here.
	NotifyBookingCreated(ctx context.Context, booking *models.Booking, bearerToken string)

	NotifyPaymentFailed(ctx context.Context, payment *models.Payment)

	// User-facing inbox
	GetUserNotifications(ctx context.Context, userID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Notification, int64, error)
	MarkRead(ctx context.Context, id, userID primitive.ObjectID) error
	MarkAllRead(ctx context.Context, userID primitive.ObjectID) error
	CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

type notificationService struct {
	notificationRepo interfaces.NotificationRepository
	pushProvider     push.Sender
	config           *config.NotificationConfig
	httpClient       *http.Client
	logger           *logger.Logger
}

func NewNotificationService(notificationRepo interfaces.NotificationRepository, pushProvider push.Sender, config *config.NotificationConfig, logger *logger.Logger) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		pushProvider:     pushProvider,
		config:           config,
		httpClient:       &http.Client{Timeout: config.RequestTimeout},
		logger:           logger,
	}
}

func (s *notificationService) NotifyBookingCreated(ctx context.Context, booking *models.Booking, bearerToken string) {
	title := "Booking confirmed"
	message := fmt.Sprintf("%s to %s on %s", booking.From, booking.To, booking.Date)

	notification := &models.Notification{
		UserID:  booking.UserID,
		Type:    models.NotificationBookingCreated,
		Title:   title,
		Message: message,
		Data: map[string]interface{}{
			"booking_id": booking.ID.Hex(),
			"amount":     booking.Amount,
		},
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.WithError(err).WithBookingID(booking.ID).Warn("Failed to persist booking notification")
	}

	s.pushToAdmins(ctx, booking, title, message)
	s.postToEndpoint(ctx, booking, bearerToken)
}

func (s *notificationService) NotifyPaymentFailed(ctx context.Context, payment *models.Payment) {
	notification := &models.Notification{
		UserID:  payment.UserID,
		Type:    models.NotificationPaymentFailed,
		Title:   "Payment failed",
		Message: payment.FailureReason,
		Data: map[string]interface{}{
			"payment_id": payment.ID.Hex(),
		},
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.WithError(err).WithPaymentID(payment.ID).Warn("Failed to persist payment notification")
	}
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Notification, int64, error) {
	return s.notificationRepo.GetByUserID(ctx, userID, params)
}

func (s *notificationService) MarkRead(ctx context.Context, id, userID primitive.ObjectID) error {
	return s.notificationRepo.MarkRead(ctx, id, userID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

func (s *notificationService) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

func (s *notificationService) pushToAdmins(ctx context.Context, booking *models.Booking, title, message string) {
	if !s.config.PushEnabled || s.pushProvider == nil {
		return
	}

	_, err := s.pushProvider.SendToTopic(ctx, s.config.AdminTopic, &push.Message{
		Title: title,
		Body:  message,
		Data: map[string]string{
			"booking_id": booking.ID.Hex(),
			"type":       string(models.NotificationBookingCreated),
		},
	})
	if err != nil {
		s.logger.WithError(err).WithBookingID(booking.ID).Warn("Admin push notification failed")
	}
}

// postToEndpoint forwards the booking to the configured back-office webhook,
// reusing the customer's bearer token for authentication.
func (s *notificationService) postToEndpoint(ctx context.Context, booking *models.Booking, bearerToken string) {
	if !s.config.EndpointEnabled || s.config.EndpointURL == "" {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"booking_id": booking.ID.Hex(),
		"user_email": booking.UserEmail,
		"user_name":  booking.UserName,
		"trip_type":  booking.TripType,
		"from":       booking.From,
		"to":         booking.To,
		"date":       booking.Date,
		"amount":     booking.Amount,
	})
	if err != nil {
		s.logger.WithError(err).WithBookingID(booking.ID).Warn("Failed to encode booking notification")
		return
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.EndpointURL, bytes.NewReader(payload))
	if err != nil {
		s.logger.WithError(err).WithBookingID(booking.ID).Warn("Failed to build booking notification request")
		return
	}

	request.Header.Set("Content-Type", "application/json")
	if bearerToken != "" {
		request.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	response, err := s.httpClient.Do(request)
	if err != nil {
		s.logger.WithError(err).WithBookingID(booking.ID).Warn("Booking notification endpoint unreachable")
		return
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		s.logger.WithBookingID(booking.ID).WithField("status", response.StatusCode).Warn("Booking notification endpoint rejected request")
	}
}
