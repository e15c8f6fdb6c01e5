package store

import (
	"sync"

	"firstcab/internal/models"
)

// Store holds the application view state the admin dashboard reads: one
// slice per concern, each following the same three phase contract. A load
// or create begins Pending (loading, no error), then resolves Fulfilled
// (data replaced, error cleared) or Rejected (error recorded, data kept).
// Create fulfillments additionally prepend the new record and raise the
// slice's CreateSuccess flag, which stays up until cleared explicitly.
type Store struct {
	mu sync.RWMutex

	auth     AuthState
	bookings BookingsState
	payments PaymentsState
	routes   RoutesState
	pricing  PricingState
	users    UsersState
}

type AuthState struct {
	User    *models.User `json:"user"`
	Loading bool         `json:"loading"`
	Err     string       `json:"error"`
}

type BookingsState struct {
	Items         []*models.Booking `json:"items"`
	Loading       bool              `json:"loading"`
	Err           string            `json:"error"`
	CreateSuccess bool              `json:"create_success"`
}

type PaymentsState struct {
	Items         []*models.Payment `json:"items"`
	Loading       bool              `json:"loading"`
	Err           string            `json:"error"`
	CreateSuccess bool              `json:"create_success"`
}

type RoutesState struct {
	Items   []*models.Route `json:"items"`
	Loading bool            `json:"loading"`
	Err     string          `json:"error"`
}

type PricingState struct {
	Items   []*models.Pricing      `json:"items"`
	Catalog *models.PricingCatalog `json:"catalog"`
	Loading bool                   `json:"loading"`
	Err     string                 `json:"error"`
}

type UsersState struct {
	Items   []*models.User `json:"items"`
	Loading bool           `json:"loading"`
	Err     string         `json:"error"`
}

// Snapshot is a point-in-time copy of every slice.
type Snapshot struct {
	Auth     AuthState     `json:"auth"`
	Bookings BookingsState `json:"bookings"`
	Payments PaymentsState `json:"payments"`
	Routes   RoutesState   `json:"routes"`
	Pricing  PricingState  `json:"pricing"`
	Users    UsersState    `json:"users"`
}

func New() *Store {
	return &Store{}
}

// Snapshot copies the current state. Slice headers are copied so a caller
// iterating the snapshot is unaffected by later prepends.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := Snapshot{
		Auth:     s.auth,
		Bookings: s.bookings,
		Payments: s.payments,
		Routes:   s.routes,
		Pricing:  s.pricing,
		Users:    s.users,
	}

	snapshot.Bookings.Items = append([]*models.Booking(nil), s.bookings.Items...)
	snapshot.Payments.Items = append([]*models.Payment(nil), s.payments.Items...)
	snapshot.Routes.Items = append([]*models.Route(nil), s.routes.Items...)
	snapshot.Pricing.Items = append([]*models.Pricing(nil), s.pricing.Items...)
	snapshot.Users.Items = append([]*models.User(nil), s.users.Items...)

	return snapshot
}

// Auth slice

func (s *Store) AuthPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.Loading = true
	s.auth.Err = ""
}

func (s *Store) SignIn(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.User = user
	s.auth.Loading = false
	s.auth.Err = ""
}

func (s *Store) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.User = nil
	s.auth.Loading = false
	s.auth.Err = ""
}

func (s *Store) AuthRejected(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.Loading = false
	s.auth.Err = message
}

// Bookings slice

func (s *Store) BookingsPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings.Loading = true
	s.bookings.Err = ""
}

func (s *Store) BookingsFulfilled(items []*models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings.Items = items
	s.bookings.Loading = false
	s.bookings.Err = ""
}

func (s *Store) BookingCreated(booking *models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings.Items = append([]*models.Booking{booking}, s.bookings.Items...)
	s.bookings.Loading = false
	s.bookings.Err = ""
	s.bookings.CreateSuccess = true
}

func (s *Store) BookingsRejected(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings.Loading = false
	s.bookings.Err = message
}

func (s *Store) ClearBookingCreateSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings.CreateSuccess = false
}

// Payments slice

func (s *Store) PaymentsPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments.Loading = true
	s.payments.Err = ""
}

func (s *Store) PaymentsFulfilled(items []*models.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments.Items = items
	s.payments.Loading = false
	s.payments.Err = ""
}

func (s *Store) PaymentCreated(payment *models.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments.Items = append([]*models.Payment{payment}, s.payments.Items...)
	s.payments.Loading = false
	s.payments.Err = ""
	s.payments.CreateSuccess = true
}

func (s *Store) PaymentsRejected(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments.Loading = false
	s.payments.Err = message
}

func (s *Store) ClearPaymentCreateSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments.CreateSuccess = false
}

// Routes slice

func (s *Store) RoutesPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes.Loading = true
	s.routes.Err = ""
}

func (s *Store) RoutesFulfilled(items []*models.Route) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes.Items = items
	s.routes.Loading = false
	s.routes.Err = ""
}

func (s *Store) RoutesRejected(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes.Loading = false
	s.routes.Err = message
}

// Pricing slice

func (s *Store) PricingPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pricing.Loading = true
	s.pricing.Err = ""
}

func (s *Store) PricingFulfilled(items []*models.Pricing, catalog *models.PricingCatalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pricing.Items = items
	s.pricing.Catalog = catalog
	s.pricing.Loading = false
	s.pricing.Err = ""
}

func (s *Store) PricingRejected(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pricing.Loading = false
	s.pricing.Err = message
}

// Users slice

func (s *Store) UsersPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users.Loading = true
	s.users.Err = ""
}

func (s *Store) UsersFulfilled(items []*models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users.Items = items
	s.users.Loading = false
	s.users.Err = ""
}

func (s *Store) UsersRejected(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users.Loading = false
	s.users.Err = message
}
