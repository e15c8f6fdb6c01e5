package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// BookingDetails is the snapshot of the booking embedded in a payment
// intent. The confirmed booking is created from it after settlement.
type BookingDetails struct {
	TripType TripType `json:"trip_type" bson:"trip_type"`
	From     string   `json:"from" bson:"from"`
	To       string   `json:"to" bson:"to"`
	CarType  string   `json:"car_type" bson:"car_type"`
	Date     string   `json:"date" bson:"date"`
	Time     string   `json:"time" bson:"time"`
	Days     int      `json:"days" bson:"days"`
	KmLimit  int      `json:"km_limit" bson:"km_limit"`
}

// Payment is created with status pending before the hosted checkout opens
// and is settled exactly once to success or failed. Amount is in minor
// currency units (paise).
type Payment struct {
	ID                primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	UserID            primitive.ObjectID  `json:"user_id" bson:"user_id" validate:"required"`
	UserEmail         string              `json:"user_email" bson:"user_email"`
	UserName          string              `json:"user_name" bson:"user_name"`
	Amount            int64               `json:"amount" bson:"amount" validate:"required"`
	Currency          string              `json:"currency" bson:"currency" default:"INR"`
	TripType          TripType            `json:"trip_type" bson:"trip_type"`
	BookingDetails    BookingDetails      `json:"booking_details" bson:"booking_details"`
	Status            PaymentStatus       `json:"status" bson:"status" default:"pending"`
	RazorpayOrderID   string              `json:"razorpay_order_id" bson:"razorpay_order_id"`
	RazorpayPaymentID string              `json:"razorpay_payment_id" bson:"razorpay_payment_id"`
	BookingID         *primitive.ObjectID `json:"booking_id" bson:"booking_id"`
	FailureReason     string              `json:"failure_reason" bson:"failure_reason"`
	CompletedAt       *time.Time          `json:"completed_at" bson:"completed_at"`
	CreatedAt         time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at" bson:"updated_at"`
}

func (p *Payment) IsSettled() bool {
	return p.Status == PaymentStatusSuccess || p.Status == PaymentStatusFailed
}
