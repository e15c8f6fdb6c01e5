package config

type PaymentConfig struct {
	Razorpay    *RazorpayConfig
	Currency    string
	DisplayName string
	Description string
	ThemeColor  string
}

type RazorpayConfig struct {
	KeyID         string
	KeySecret     string
	WebhookSecret string
}

func loadPaymentConfig() *PaymentConfig {
	return &PaymentConfig{
		Razorpay: &RazorpayConfig{
			KeyID:         getEnv("RAZORPAY_KEY_ID", ""),
			KeySecret:     getEnv("RAZORPAY_KEY_SECRET", ""),
			WebhookSecret: getEnv("RAZORPAY_WEBHOOK_SECRET", ""),
		},
		Currency:    getEnv("PAYMENT_CURRENCY", "INR"),
		DisplayName: getEnv("PAYMENT_DISPLAY_NAME", "Firstcab"),
		Description: getEnv("PAYMENT_DESCRIPTION", "Cab Booking Payment"),
		ThemeColor:  getEnv("PAYMENT_THEME_COLOR", "#F59E0B"),
	}
}
