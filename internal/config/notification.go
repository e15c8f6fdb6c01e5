package config

import "time"

type NotificationConfig struct {
	EndpointURL     string
	RequestTimeout  time.Duration
	FCMCredentials  string
	AdminTopic      string
	PushEnabled     bool
	EndpointEnabled bool
}

func loadNotificationConfig() *NotificationConfig {
	return &NotificationConfig{
		EndpointURL:     getEnv("NOTIFICATION_ENDPOINT_URL", "http://localhost:5000/api/notifications/booking-created"),
		RequestTimeout:  getEnvAsDuration("NOTIFICATION_REQUEST_TIMEOUT", 10*time.Second),
		FCMCredentials:  getEnv("FCM_CREDENTIALS_FILE", ""),
		AdminTopic:      getEnv("NOTIFICATION_ADMIN_TOPIC", "admin-bookings"),
		PushEnabled:     getEnvAsBool("NOTIFICATION_PUSH_ENABLED", false),
		EndpointEnabled: getEnvAsBool("NOTIFICATION_ENDPOINT_ENABLED", true),
	}
}
