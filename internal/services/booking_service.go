package services

import (
	"context"
	"fmt"

	"firstcab/internal/models"
	"firstcab/internal/repositories/interfaces"
	"firstcab/internal/store"
	"firstcab/internal/utils"
	"firstcab/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService interface {
	// CreateBooking persists a confirmed booking. The payment workflow is
	// the only caller for paid bookings.
	CreateBooking(ctx context.Context, booking *models.Booking) error

	GetBooking(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	GetUserBookings(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error)
	CancelBooking(ctx context.Context, id, userID primitive.ObjectID) error

	// Admin operations
	ListBookings(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error
	CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error)
}

type bookingService struct {
	bookingRepo interfaces.BookingRepository
	store       *store.Store
	logger      *logger.Logger
}

func NewBookingService(bookingRepo interfaces.BookingRepository, store *store.Store, logger *logger.Logger) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		store:       store,
		logger:      logger,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, booking *models.Booking) error {
	s.store.BookingsPending()

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		wrapped := utils.PersistenceError(err)
		s.store.BookingsRejected(wrapped.Error())
		return wrapped
	}

	s.store.BookingCreated(booking)

	s.logger.LogBookingEvent(booking.ID, "created", map[string]interface{}{
		"user_id":   booking.UserID.Hex(),
		"trip_type": booking.TripType,
		"amount":    booking.Amount,
	})

	return nil
}

func (s *bookingService) GetBooking(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error) {
	return s.bookingRepo.GetByUserID(ctx, userID)
}

// CancelBooking cancels the caller's own booking. Terminal bookings are
// left untouched.
func (s *bookingService) CancelBooking(ctx context.Context, id, userID primitive.ObjectID) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if booking.UserID != userID {
		return utils.ErrNotFound
	}
	if booking.IsTerminal() {
		return fmt.Errorf("%w: booking already %s", utils.ErrValidation, booking.Status)
	}

	if err := s.bookingRepo.Cancel(ctx, id); err != nil {
		return err
	}

	s.logger.LogBookingEvent(id, "cancelled", map[string]interface{}{"user_id": userID.Hex()})

	return nil
}

func (s *bookingService) ListBookings(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	s.store.BookingsPending()

	bookings, total, err := s.bookingRepo.GetAll(ctx, params)
	if err != nil {
		s.store.BookingsRejected(err.Error())
		return nil, 0, err
	}

	s.store.BookingsFulfilled(bookings)

	return bookings, total, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error {
	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.logger.LogBookingEvent(id, "status_changed", map[string]interface{}{"status": status})

	return nil
}

func (s *bookingService) CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error) {
	return s.bookingRepo.CountByStatus(ctx)
}
