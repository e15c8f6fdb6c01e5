package services

import (
	"context"
	"testing"

	"firstcab/internal/models"
	"firstcab/internal/store"
	"firstcab/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type bookingFixture struct {
	repo    *fakeBookingRepo
	store   *store.Store
	service BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	st := store.New()
	repo := newFakeBookingRepo()
	return &bookingFixture{
		repo:    repo,
		store:   st,
		service: NewBookingService(repo, st, newTestLogger(t)),
	}
}

func newBooking(userID primitive.ObjectID, status models.BookingStatus) *models.Booking {
	return &models.Booking{
		UserID:   userID,
		TripType: models.TripTypeOneWay,
		From:     "Delhi",
		To:       "Jaipur",
		CarType:  "SUV",
		Amount:   3000,
		Status:   status,
	}
}

func TestCreateBookingPrependsToStore(t *testing.T) {
	f := newBookingFixture(t)
	userID := primitive.NewObjectID()

	first := newBooking(userID, models.BookingStatusConfirmed)
	require.NoError(t, f.service.CreateBooking(context.Background(), first))
	second := newBooking(userID, models.BookingStatusConfirmed)
	require.NoError(t, f.service.CreateBooking(context.Background(), second))

	assert.False(t, first.ID.IsZero())

	snapshot := f.store.Snapshot()
	require.Len(t, snapshot.Bookings.Items, 2)
	assert.Equal(t, second.ID, snapshot.Bookings.Items[0].ID)
	assert.Equal(t, first.ID, snapshot.Bookings.Items[1].ID)
	assert.True(t, snapshot.Bookings.CreateSuccess)
}

func TestCancelBookingOwnership(t *testing.T) {
	f := newBookingFixture(t)
	owner := primitive.NewObjectID()

	booking := newBooking(owner, models.BookingStatusConfirmed)
	require.NoError(t, f.repo.Create(context.Background(), booking))

	// A stranger cancelling sees the same error as a missing booking.
	err := f.service.CancelBooking(context.Background(), booking.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, utils.ErrNotFound)

	require.NoError(t, f.service.CancelBooking(context.Background(), booking.ID, owner))

	cancelled, err := f.repo.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
}

func TestCancelBookingRejectsTerminal(t *testing.T) {
	f := newBookingFixture(t)
	owner := primitive.NewObjectID()

	for _, status := range []models.BookingStatus{models.BookingStatusCancelled, models.BookingStatusCompleted} {
		booking := newBooking(owner, status)
		require.NoError(t, f.repo.Create(context.Background(), booking))

		err := f.service.CancelBooking(context.Background(), booking.ID, owner)
		assert.ErrorIs(t, err, utils.ErrValidation, "status %s", status)
	}
}

func TestCancelBookingUnknownID(t *testing.T) {
	f := newBookingFixture(t)

	err := f.service.CancelBooking(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestListBookingsDrivesStore(t *testing.T) {
	f := newBookingFixture(t)
	userID := primitive.NewObjectID()
	require.NoError(t, f.repo.Create(context.Background(), newBooking(userID, models.BookingStatusConfirmed)))

	bookings, total, err := f.service.ListBookings(context.Background(), &utils.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, bookings, 1)

	snapshot := f.store.Snapshot()
	assert.Len(t, snapshot.Bookings.Items, 1)
	assert.False(t, snapshot.Bookings.Loading)
	assert.Empty(t, snapshot.Bookings.Err)
}

func TestCountByStatus(t *testing.T) {
	f := newBookingFixture(t)
	userID := primitive.NewObjectID()
	require.NoError(t, f.repo.Create(context.Background(), newBooking(userID, models.BookingStatusConfirmed)))
	require.NoError(t, f.repo.Create(context.Background(), newBooking(userID, models.BookingStatusConfirmed)))
	require.NoError(t, f.repo.Create(context.Background(), newBooking(userID, models.BookingStatusCompleted)))

	counts, err := f.service.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[models.BookingStatusConfirmed])
	assert.Equal(t, int64(1), counts[models.BookingStatusCompleted])
}
