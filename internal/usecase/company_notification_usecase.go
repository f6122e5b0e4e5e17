package usecase

import (
	"context"
	"strings"
)

// SendCompanyNotificationInput describes a broadcast to one company event topic.
type SendCompanyNotificationInput struct {
	Token     string         `json:"token"`
	CompanyID string         `json:"companyId" validate:"required"`
	Event     string         `json:"event" validate:"required"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data"`
}

// Normalize trims the topic components. Title and body are sent as given.
func (in *SendCompanyNotificationInput) Normalize() {
	in.CompanyID = strings.TrimSpace(in.CompanyID)
	in.Event = strings.TrimSpace(in.Event)
}

// SendCompanyNotificationResult identifies the published message.
type SendCompanyNotificationResult struct {
	MessageID string `json:"messageId"`
	Topic     string `json:"topic"`
}

// CompanyNotificationUsecase defines the interface for company topic broadcasts
type CompanyNotificationUsecase interface {
	// SendCompanyNotification publishes a push notification to the company's event topic.
	// There is no delivery tracking or retry.
	SendCompanyNotification(ctx context.Context, input *SendCompanyNotificationInput) (*SendCompanyNotificationResult, error)
}
