package service

import (
	"context"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendToTopic publishes a notification to every subscriber of msg.Topic
	// and returns the backend's message ID. Delivery is fire-and-forget.
	SendToTopic(ctx context.Context, msg *entity.TopicNotification) (string, error)
}
