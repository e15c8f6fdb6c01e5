package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/razorpay/razorpay-go"
)

type RazorpayGateway struct {
	client        *razorpay.Client
	keyID         string
	keySecret     string
	webhookSecret string
}

func NewRazorpayGateway(keyID, keySecret, webhookSecret string) *RazorpayGateway {
	client := razorpay.NewClient(keyID, keySecret)

	return &RazorpayGateway{
		client:        client,
		keyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
	}
}

func (r *RazorpayGateway) KeyID() string {
	return r.keyID
}

func (r *RazorpayGateway) CreateOrder(ctx context.Context, request *OrderRequest) (*Order, error) {
	orderData := map[string]interface{}{
		"amount":   request.Amount, // already in paise
		"currency": request.Currency,
		"receipt":  request.Receipt,
		"notes":    request.Notes,
	}

	order, err := r.client.Order.Create(orderData, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &Order{
		OrderID:   order["id"].(string),
		Status:    order["status"].(string),
		Amount:    toInt64(order["amount"]),
		Currency:  order["currency"].(string),
		CreatedAt: toInt64(order["created_at"]),
	}, nil
}

// VerifyPaymentSignature checks the checkout success signature, an
// HMAC-SHA256 of "<order_id>|<payment_id>" keyed with the key secret.
func (r *RazorpayGateway) VerifyPaymentSignature(orderID, paymentID, signature string) error {
	expected := r.sign(orderID+"|"+paymentID, r.keySecret)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return fmt.Errorf("invalid payment signature")
	}
	return nil
}

func (r *RazorpayGateway) VerifyWebhook(payload []byte, signature string) error {
	expected := r.sign(string(payload), r.webhookSecret)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return fmt.Errorf("invalid webhook signature")
	}
	return nil
}

func (r *RazorpayGateway) FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error) {
	payment, err := r.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}

	result := &GatewayPayment{
		PaymentID: payment["id"].(string),
		Status:    payment["status"].(string),
		Amount:    toInt64(payment["amount"]),
		Currency:  payment["currency"].(string),
	}
	if orderID, ok := payment["order_id"].(string); ok {
		result.OrderID = orderID
	}
	if method, ok := payment["method"].(string); ok {
		result.Method = method
	}

	return result, nil
}

func (r *RazorpayGateway) sign(payload, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}

// Razorpay's API client unmarshals numbers as float64.
func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
