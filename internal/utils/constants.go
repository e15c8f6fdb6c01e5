package utils

import "time"

// Application Constants
const (
	AppName    = "Firstcab"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency = "INR"
	DefaultTimeZone = "Asia/Kolkata"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL  = 24 * time.Hour
	JWTRefreshTokenTTL = 7 * 24 * time.Hour
	PasswordMinLength  = 8
	PasswordMaxLength  = 128

	// Booking Constants
	MinBookingAmount = 100.0    // rupees
	MaxBookingAmount = 100000.0 // rupees
	MaxRentalDays    = 30

	// File Upload
	MaxImageSize = 5 * 1024 * 1024 // 5MB

	// Cache TTLs
	UserCacheTTL    = 30 * time.Minute
	RouteCacheTTL   = 10 * time.Minute
	PricingCacheTTL = 10 * time.Minute
	PaymentCacheTTL = 30 * time.Minute
)

// Collection names
const (
	CollectionUsers         = "users"
	CollectionRoutes        = "routes"
	CollectionPricing       = "pricing"
	CollectionBookings      = "bookings"
	CollectionPayments      = "payments"
	CollectionNotifications = "notifications"
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusFailed  = "failed"
)

// Error Messages
const (
	ErrInvalidCredentials = "invalid credentials"
	ErrUserNotFoundMsg    = "user not found"
	ErrUserExists         = "user already exists"
	ErrInvalidToken       = "invalid token"
	ErrTokenExpired       = "token expired"
	ErrInvalidInput       = "invalid input"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrForbidden          = "forbidden"
	ErrConflict           = "conflict"
	ErrValidationFailed   = "validation failed"
	ErrFileUploadFailed   = "file upload failed"
	ErrPaymentFailed      = "payment failed"
	ErrRouteNotFound      = "route not found"
	ErrBookingNotFound    = "booking not found"
)
