package handler

import (
	"log/slog"

	"github.com/JeffJagr/SmartBar-v3/internal/delivery/api/response"
	"github.com/JeffJagr/SmartBar-v3/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.CompanyNotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification endpoints
type NotificationHandler struct {
	notificationUC usecase.CompanyNotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// SendCompanyNotificationRequest is the data of a send_company_notification call
type SendCompanyNotificationRequest struct {
	Token     response.LooseString `json:"token"`
	CompanyID response.LooseString `json:"companyId"`
	Event     response.LooseString `json:"event"`
	Title     response.LooseString `json:"title"`
	Body      response.LooseString `json:"body"`
	Data      map[string]any       `json:"data"`
}

// SendCompanyNotification handles company topic broadcasts
func (h *NotificationHandler) SendCompanyNotification(c echo.Context) error {
	var req SendCompanyNotificationRequest
	if err := response.Bind(c, &req); err != nil {
		return err
	}

	result, err := h.notificationUC.SendCompanyNotification(c.Request().Context(), &usecase.SendCompanyNotificationInput{
		Token:     req.Token.String(),
		CompanyID: req.CompanyID.String(),
		Event:     req.Event.String(),
		Title:     req.Title.String(),
		Body:      req.Body.String(),
		Data:      req.Data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, result)
}
