package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string
type BookingPaymentStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"

	BookingPaymentStatusUnpaid BookingPaymentStatus = "unpaid"
	BookingPaymentStatusPaid   BookingPaymentStatus = "paid"
)

type Booking struct {
	ID                primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	UserID            primitive.ObjectID   `json:"user_id" bson:"user_id" validate:"required"`
	UserEmail         string               `json:"user_email" bson:"user_email"`
	UserName          string               `json:"user_name" bson:"user_name"`
	TripType          TripType             `json:"trip_type" bson:"trip_type" validate:"required,trip_type"`
	From              string               `json:"from" bson:"from" validate:"required"`
	To                string               `json:"to" bson:"to"`
	CarType           string               `json:"car_type" bson:"car_type"`
	Date              string               `json:"date" bson:"date" validate:"required"`
	Time              string               `json:"time" bson:"time"`
	Days              int                  `json:"days" bson:"days"`         // round-trip rental length
	KmLimit           int                  `json:"km_limit" bson:"km_limit"` // round-trip distance allowance
	Amount            float64              `json:"amount" bson:"amount"` // major units (rupees)
	Status            BookingStatus        `json:"status" bson:"status" default:"pending"`
	PaymentStatus     BookingPaymentStatus `json:"payment_status" bson:"payment_status" default:"unpaid"`
	PaymentID         *primitive.ObjectID  `json:"payment_id" bson:"payment_id"`
	RazorpayPaymentID string               `json:"razorpay_payment_id" bson:"razorpay_payment_id"`
	CreatedAt         time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at" bson:"updated_at"`
	CancelledAt       *time.Time           `json:"cancelled_at" bson:"cancelled_at"`
}

// IsTerminal reports whether the booking's status admits no further
// transitions. Status changes are append-only once terminal.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCancelled || b.Status == BookingStatusCompleted
}
