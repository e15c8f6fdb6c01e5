package payment

import (
	"context"
)

// Gateway abstracts the hosted checkout provider. Orders are created
// server-side; the checkout UI runs on the client and reports its outcome
// back through the callback endpoints.
type Gateway interface {
	CreateOrder(ctx context.Context, request *OrderRequest) (*Order, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) error
	VerifyWebhook(payload []byte, signature string) error
	FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error)
	KeyID() string
}

// OrderRequest amounts are in minor currency units (paise).
type OrderRequest struct {
	Amount   int64                  `json:"amount"`
	Currency string                 `json:"currency"`
	Receipt  string                 `json:"receipt"`
	Notes    map[string]interface{} `json:"notes"`
}

type Order struct {
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	CreatedAt int64  `json:"created_at"`
}

type GatewayPayment struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Method    string `json:"method"`
}

// CheckoutOptions is what the client needs to open the hosted checkout UI.
type CheckoutOptions struct {
	Key          string `json:"key"`
	OrderID      string `json:"order_id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ThemeColor   string `json:"theme_color"`
	PrefillName  string `json:"prefill_name"`
	PrefillEmail string `json:"prefill_email"`
}
