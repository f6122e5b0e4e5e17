package notification

import (
	"context"
	"log/slog"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"
	"github.com/JeffJagr/SmartBar-v3/internal/errors"

	"firebase.google.com/go/v4/messaging"
)

// MessagingProvider hands out the process-wide Cloud Messaging client.
type MessagingProvider interface {
	Messaging(ctx context.Context) (*messaging.Client, error)
}

type firebaseService struct {
	clients MessagingProvider
	logger  *slog.Logger
}

// NewFirebaseService creates a new Firebase notification service instance.
// The messaging client is resolved on first send.
func NewFirebaseService(clients MessagingProvider, logger *slog.Logger) service.NotificationService {
	return &firebaseService{
		clients: clients,
		logger:  logger,
	}
}

// SendToTopic publishes a notification to a messaging topic
func (s *firebaseService) SendToTopic(ctx context.Context, msg *entity.TopicNotification) (string, error) {
	client, err := s.clients.Messaging(ctx)
	if err != nil {
		return "", err
	}

	messageID, err := client.Send(ctx, toMessage(msg))
	if err != nil {
		return "", errors.WithStack(err)
	}

	s.logger.Debug("Topic notification sent",
		slog.String("topic", msg.Topic),
		slog.String("message_id", messageID),
	)

	return messageID, nil
}

func toMessage(msg *entity.TopicNotification) *messaging.Message {
	return &messaging.Message{
		Topic: msg.Topic,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}
}
