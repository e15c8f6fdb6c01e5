package push

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMSender delivers messages through Firebase Cloud Messaging. Admin
// devices subscribe to the back-office topic via the Firebase client
// SDK, so only sending happens server side.
type FCMSender struct {
	client *messaging.Client
}

func NewFCMSender(credentialsFile string) (*FCMSender, error) {
	ctx := context.Background()

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init fcm client: %w", err)
	}
	return &FCMSender{client: client}, nil
}

func (s *FCMSender) Send(ctx context.Context, msg *Message) (string, error) {
	id, err := s.client.Send(ctx, toFCM(msg))
	if err != nil {
		return "", fmt.Errorf("fcm send: %w", err)
	}
	return id, nil
}

func (s *FCMSender) SendToTopic(ctx context.Context, topic string, msg *Message) (string, error) {
	broadcast := *msg
	broadcast.Token = ""
	broadcast.Topic = topic
	return s.Send(ctx, &broadcast)
}

func toFCM(msg *Message) *messaging.Message {
	out := &messaging.Message{
		Token: msg.Token,
		Data:  msg.Data,
	}
	if msg.Token == "" {
		out.Topic = msg.Topic
	}
	if msg.Title != "" || msg.Body != "" {
		out.Notification = &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		}
	}
	return out
}
