package impl

import (
	"context"
	"testing"

	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
	domainerrors "github.com/JeffJagr/SmartBar-v3/internal/domain/errors"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"
	mockSvc "github.com/JeffJagr/SmartBar-v3/internal/mocks/service"
	"github.com/JeffJagr/SmartBar-v3/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCompanyNotificationService(t *testing.T) (usecase.CompanyNotificationUsecase, *mockSvc.MockNotificationService) {
	notifier := mockSvc.NewMockNotificationService(t)

	srv := NewCompanyNotificationService(CompanyNotificationServiceParams{
		Notifier: notifier,
		Secrets:  testSecrets(),
		Config:   testConfig(),
		Logger:   discardLogger(),
	})

	return srv, notifier
}

func TestCompanyNotificationService_Send_Success(t *testing.T) {
	srv, notifier := createTestCompanyNotificationService(t)
	ctx := context.Background()

	notifier.EXPECT().
		SendToTopic(ctx, &entity.TopicNotification{
			Topic: "c_Acme_Co_lowStock",
			Title: "SmartBar Alert",
			Body:  "",
			Data:  map[string]string{"productId": "gin-01", "quantity": "2", "urgent": "true"},
		}).
		Return("projects/smartbar-v3/messages/123", nil).
		Once()

	result, err := srv.SendCompanyNotification(ctx, &usecase.SendCompanyNotificationInput{
		Token:     testNotifyToken,
		CompanyID: " Acme Co ",
		Event:     "lowStock",
		Data:      map[string]any{"productId": "gin-01", "quantity": float64(2), "urgent": true},
	})

	require.NoError(t, err)
	assert.Equal(t, &usecase.SendCompanyNotificationResult{
		MessageID: "projects/smartbar-v3/messages/123",
		Topic:     "c_Acme_Co_lowStock",
	}, result)
}

func TestCompanyNotificationService_Send_CustomTitleAndBody(t *testing.T) {
	srv, notifier := createTestCompanyNotificationService(t)

	notifier.EXPECT().
		SendToTopic(mock.Anything, mock.MatchedBy(func(msg *entity.TopicNotification) bool {
			return msg.Title == "Order confirmed" && msg.Body == "PO-17 is on its way" && len(msg.Data) == 0
		})).
		Return("msg-1", nil)

	result, err := srv.SendCompanyNotification(context.Background(), &usecase.SendCompanyNotificationInput{
		Token:     testNotifyToken,
		CompanyID: "1234",
		Event:     "orderConfirmed",
		Title:     "Order confirmed",
		Body:      "PO-17 is on its way",
	})

	require.NoError(t, err)
	assert.Equal(t, "c_1234_orderConfirmed", result.Topic)
}

func TestCompanyNotificationService_Send_Forbidden(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.SendCompanyNotificationInput
	}{
		{name: "nil input", input: nil},
		{name: "missing token", input: &usecase.SendCompanyNotificationInput{CompanyID: "1234", Event: "lowStock"}},
		{name: "wrong token", input: &usecase.SendCompanyNotificationInput{Token: testBackfillToken, CompanyID: "1234", Event: "lowStock"}},
		{name: "token checked before fields", input: &usecase.SendCompanyNotificationInput{Token: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := createTestCompanyNotificationService(t)

			result, err := srv.SendCompanyNotification(context.Background(), tt.input)

			require.ErrorIs(t, err, domainerrors.ErrForbidden)
			assert.Nil(t, result)
		})
	}
}

func TestCompanyNotificationService_Send_MissingFieldsNeverReachBackend(t *testing.T) {
	srv, _ := createTestCompanyNotificationService(t)

	_, err := srv.SendCompanyNotification(context.Background(), &usecase.SendCompanyNotificationInput{
		Token:     testNotifyToken,
		CompanyID: "1234",
		Event:     "  ",
	})

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.StatusInvalidArgument, appErr.ErrorCode())
	assert.Equal(t, "event is required", appErr.Message())
}

func TestCompanyNotificationService_Send_BackendFailure(t *testing.T) {
	srv, notifier := createTestCompanyNotificationService(t)
	notifier.EXPECT().SendToTopic(mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

	_, err := srv.SendCompanyNotification(context.Background(), &usecase.SendCompanyNotificationInput{
		Token:     testNotifyToken,
		CompanyID: "1234",
		Event:     "lowStock",
	})

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.StatusInternal, appErr.ErrorCode())
	assert.Equal(t, "Failed to send notification: quota exceeded", appErr.Message())
}

func TestCompanyNotificationService_Send_PublishesAuditEvent(t *testing.T) {
	notifier := mockSvc.NewMockNotificationService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	srv := NewCompanyNotificationService(CompanyNotificationServiceParams{
		Notifier:  notifier,
		Secrets:   testSecrets(),
		Publisher: publisher,
		Logger:    discardLogger(),
	})

	notifier.EXPECT().SendToTopic(mock.Anything, mock.Anything).Return("msg-9", nil)
	publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.MatchedBy(func(event *service.AuditEvent) bool {
			return event.Type == service.AuditEventNotificationSent &&
				event.Subject == "c_1234_orderCreated" &&
				event.Attributes["message_id"] == "msg-9"
		})).
		Return(nil).
		Once()

	_, err := srv.SendCompanyNotification(context.Background(), &usecase.SendCompanyNotificationInput{
		Token:     testNotifyToken,
		CompanyID: "1234",
		Event:     "orderCreated",
	})

	require.NoError(t, err)
}
