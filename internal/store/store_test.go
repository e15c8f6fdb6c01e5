package store

import (
	"testing"

	"firstcab/internal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBookingsThreePhase(t *testing.T) {
	s := New()

	s.BookingsPending()
	snapshot := s.Snapshot()
	assert.True(t, snapshot.Bookings.Loading)
	assert.Empty(t, snapshot.Bookings.Err)

	bookings := []*models.Booking{{ID: primitive.NewObjectID()}}
	s.BookingsFulfilled(bookings)
	snapshot = s.Snapshot()
	assert.False(t, snapshot.Bookings.Loading)
	assert.Len(t, snapshot.Bookings.Items, 1)
	assert.Empty(t, snapshot.Bookings.Err)
}

func TestRejectedKeepsData(t *testing.T) {
	s := New()

	s.BookingsFulfilled([]*models.Booking{{ID: primitive.NewObjectID()}})
	s.BookingsPending()
	s.BookingsRejected("persistence error")

	snapshot := s.Snapshot()
	assert.False(t, snapshot.Bookings.Loading)
	assert.Equal(t, "persistence error", snapshot.Bookings.Err)
	assert.Len(t, snapshot.Bookings.Items, 1, "rejection must not clear existing data")
}

func TestPendingClearsError(t *testing.T) {
	s := New()

	s.BookingsRejected("boom")
	s.BookingsPending()

	snapshot := s.Snapshot()
	assert.True(t, snapshot.Bookings.Loading)
	assert.Empty(t, snapshot.Bookings.Err)
}

func TestCreatePrependsAndFlags(t *testing.T) {
	s := New()

	older := &models.Booking{ID: primitive.NewObjectID()}
	newer := &models.Booking{ID: primitive.NewObjectID()}

	s.BookingsFulfilled([]*models.Booking{older})
	s.BookingCreated(newer)

	snapshot := s.Snapshot()
	assert.Len(t, snapshot.Bookings.Items, 2)
	assert.Equal(t, newer.ID, snapshot.Bookings.Items[0].ID, "new booking must be prepended")
	assert.True(t, snapshot.Bookings.CreateSuccess)
}

func TestCreateSuccessClearedExplicitly(t *testing.T) {
	s := New()

	s.BookingCreated(&models.Booking{ID: primitive.NewObjectID()})

	// Unrelated transitions leave the flag up.
	s.BookingsPending()
	s.BookingsFulfilled(nil)
	assert.True(t, s.Snapshot().Bookings.CreateSuccess)

	s.ClearBookingCreateSuccess()
	assert.False(t, s.Snapshot().Bookings.CreateSuccess)
}

func TestPaymentCreateSuccessIndependent(t *testing.T) {
	s := New()

	s.PaymentCreated(&models.Payment{ID: primitive.NewObjectID()})
	s.ClearBookingCreateSuccess()

	snapshot := s.Snapshot()
	assert.True(t, snapshot.Payments.CreateSuccess)
	assert.False(t, snapshot.Bookings.CreateSuccess)

	s.ClearPaymentCreateSuccess()
	assert.False(t, s.Snapshot().Payments.CreateSuccess)
}

func TestAuthSignInSignOut(t *testing.T) {
	s := New()

	user := &models.User{ID: primitive.NewObjectID(), Email: "rider@example.com"}
	s.SignIn(user)

	snapshot := s.Snapshot()
	assert.NotNil(t, snapshot.Auth.User)
	assert.Equal(t, "rider@example.com", snapshot.Auth.User.Email)

	s.SignOut()
	assert.Nil(t, s.Snapshot().Auth.User)
}

func TestSnapshotIsolation(t *testing.T) {
	s := New()

	s.BookingsFulfilled([]*models.Booking{{ID: primitive.NewObjectID()}})
	snapshot := s.Snapshot()

	s.BookingCreated(&models.Booking{ID: primitive.NewObjectID()})

	assert.Len(t, snapshot.Bookings.Items, 1, "snapshot must not see later writes")
	assert.Len(t, s.Snapshot().Bookings.Items, 2)
}
