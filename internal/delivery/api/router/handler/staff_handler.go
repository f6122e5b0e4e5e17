// Package handler contains the callable endpoint handlers.
package handler

import (
	"log/slog"

	"github.com/JeffJagr/SmartBar-v3/internal/delivery/api/response"
	"github.com/JeffJagr/SmartBar-v3/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StaffHandlerParams holds dependencies for StaffHandler, injected by Fx.
type StaffHandlerParams struct {
	fx.In

	StaffAuthUC usecase.StaffAuthUsecase
	BackfillUC  usecase.PinBackfillUsecase
	Logger      *slog.Logger
}

// StaffHandler holds dependencies for staff credential endpoints
type StaffHandler struct {
	staffAuthUC usecase.StaffAuthUsecase
	backfillUC  usecase.PinBackfillUsecase
	logger      *slog.Logger
}

// NewStaffHandler is the constructor for StaffHandler
func NewStaffHandler(params StaffHandlerParams) *StaffHandler {
	return &StaffHandler{
		staffAuthUC: params.StaffAuthUC,
		backfillUC:  params.BackfillUC,
		logger:      params.Logger,
	}
}

// VerifyStaffPinRequest is the data of a verify_staff_pin call
type VerifyStaffPinRequest struct {
	CompanyCode response.LooseString `json:"companyCode"`
	Pin         response.LooseString `json:"pin"`
}

// BackfillRequest is the data of a backfill_staff_pin_hashes call
type BackfillRequest struct {
	Token response.LooseString `json:"token"`
}

// VerifyStaffPin handles staff PIN logins
func (h *StaffHandler) VerifyStaffPin(c echo.Context) error {
	var req VerifyStaffPinRequest
	if err := response.Bind(c, &req); err != nil {
		return err
	}

	profile, err := h.staffAuthUC.VerifyStaffPin(c.Request().Context(), &usecase.VerifyStaffPinInput{
		CompanyCode: req.CompanyCode.String(),
		Pin:         req.Pin.String(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, profile)
}

// BackfillPinHashes handles the token-gated PIN hash migration
func (h *StaffHandler) BackfillPinHashes(c echo.Context) error {
	var req BackfillRequest
	if err := response.Bind(c, &req); err != nil {
		return err
	}

	result, err := h.backfillUC.BackfillPinHashes(c.Request().Context(), &usecase.BackfillInput{
		Token: req.Token.String(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, result)
}
