package push

import "context"

// Message is a push notification addressed to a single device token or
// a broadcast topic. Token wins when both are set.
type Message struct {
	Token string            `json:"token,omitempty"`
	Topic string            `json:"topic,omitempty"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Sender delivers push messages. Implementations return the provider's
// message id on success.
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
	SendToTopic(ctx context.Context, topic string, msg *Message) (string, error)
}
