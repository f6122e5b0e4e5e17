package impl

import (
	"context"
	"log/slog"

	"github.com/JeffJagr/SmartBar-v3/config"
	deliverycontext "github.com/JeffJagr/SmartBar-v3/internal/delivery/context"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/entity"
	domainerrors "github.com/JeffJagr/SmartBar-v3/internal/domain/errors"
	"github.com/JeffJagr/SmartBar-v3/internal/domain/service"
	"github.com/JeffJagr/SmartBar-v3/internal/usecase"

	"go.uber.org/fx"
)

const defaultNotificationTitle = "SmartBar Alert"

// companyNotificationService implements the CompanyNotificationUsecase interface.
type companyNotificationService struct {
	notifier     service.NotificationService
	secrets      service.SecretVerifier
	audit        auditRecorder
	defaultTitle string
	logger       *slog.Logger
}

// CompanyNotificationServiceParams holds dependencies for CompanyNotificationService, injected by Fx.
type CompanyNotificationServiceParams struct {
	fx.In

	Notifier  service.NotificationService
	Secrets   service.SecretVerifier
	Publisher service.EventPublisher `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCompanyNotificationService is the constructor for companyNotificationService.
func NewCompanyNotificationService(params CompanyNotificationServiceParams) usecase.CompanyNotificationUsecase {
	defaultTitle := defaultNotificationTitle
	if params.Config != nil && params.Config.Notify != nil && params.Config.Notify.DefaultTitle != "" {
		defaultTitle = params.Config.Notify.DefaultTitle
	}

	return &companyNotificationService{
		notifier:     params.Notifier,
		secrets:      params.Secrets,
		audit:        auditRecorder{publisher: params.Publisher},
		defaultTitle: defaultTitle,
		logger:       params.Logger,
	}
}

func (srv *companyNotificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendCompanyNotification checks the token, validates the topic components and publishes once.
func (srv *companyNotificationService) SendCompanyNotification(
	ctx context.Context,
	input *usecase.SendCompanyNotificationInput,
) (*usecase.SendCompanyNotificationResult, error) {
	in := usecase.SendCompanyNotificationInput{}
	if input != nil {
		in = *input
	}

	if !srv.secrets.Verify(service.ScopeNotify, in.Token) {
		return nil, domainerrors.ErrForbidden
	}

	in.Normalize()
	if err := usecase.Validate(&in); err != nil {
		return nil, err
	}

	title := in.Title
	if title == "" {
		title = srv.defaultTitle
	}

	msg := &entity.TopicNotification{
		Topic: entity.CompanyTopic(in.CompanyID, in.Event),
		Title: title,
		Body:  in.Body,
		Data:  entity.StringifyData(in.Data),
	}

	logger := srv.log(ctx)
	messageID, err := srv.notifier.SendToTopic(ctx, msg)
	if err != nil {
		logger.Error("Failed to send company notification",
			slog.String("topic", msg.Topic),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewNotificationFailedError(err)
	}

	logger.Info("Company notification sent",
		slog.String("topic", msg.Topic),
		slog.String("message_id", messageID),
	)
	srv.audit.record(ctx, logger, service.AuditEventNotificationSent, msg.Topic, map[string]string{
		"company_id": in.CompanyID,
		"event":      in.Event,
		"message_id": messageID,
	})

	return &usecase.SendCompanyNotificationResult{
		MessageID: messageID,
		Topic:     msg.Topic,
	}, nil
}
