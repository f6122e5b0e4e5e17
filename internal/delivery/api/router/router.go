// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/JeffJagr/SmartBar-v3/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Callable function names, served as POST /<name>.
const (
	FunctionVerifyStaffPin          = "verify_staff_pin"
	FunctionBackfillStaffPinHashes  = "backfill_staff_pin_hashes"
	FunctionSendCompanyNotification = "send_company_notification"
)

type RouterParams struct {
	fx.In

	StaffHandler        *handler.StaffHandler
	NotificationHandler *handler.NotificationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	staffHandler        *handler.StaffHandler
	notificationHandler *handler.NotificationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		staffHandler:        params.StaffHandler,
		notificationHandler: params.NotificationHandler,
	}
}

// RegisterRoutes sets up all the callable endpoints for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.POST("/"+FunctionVerifyStaffPin, r.staffHandler.VerifyStaffPin)
	e.POST("/"+FunctionBackfillStaffPinHashes, r.staffHandler.BackfillPinHashes)
	e.POST("/"+FunctionSendCompanyNotification, r.notificationHandler.SendCompanyNotification)
}
