package validators

// InitiatePaymentRequest carries the display amount exactly as the pricing
// page renders it, e.g. "₹1,234.50".
type InitiatePaymentRequest struct {
	Amount   string                `json:"amount" validate:"required"`
	TripType string                `json:"trip_type" validate:"required,trip_type"`
	Details  BookingDetailsRequest `json:"details" validate:"required"`
}

type BookingDetailsRequest struct {
	From    string `json:"from" validate:"required,min=2,max=100"`
	To      string `json:"to" validate:"omitempty,max=100"`
	CarType string `json:"car_type" validate:"required,max=50"`
	Date    string `json:"date" validate:"required,max=20"`
	Time    string `json:"time" validate:"omitempty,max=20"`
	Days    int    `json:"days" validate:"omitempty,gte=1,lte=30"`
	KmLimit int    `json:"km_limit" validate:"omitempty,gte=0"`
}

type PaymentSuccessRequest struct {
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

type PaymentFailureRequest struct {
	Reason            string `json:"reason" validate:"required,max=500"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"omitempty"`
}
