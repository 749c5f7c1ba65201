package handlers

import (
	"paygate/internal/middleware"
	"paygate/internal/services/gateway"
	"paygate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes the operator-only fee-rate and withdrawal endpoints.
// Authorization lives in the core; these handlers just pass the caller
// through.
type AdminHandler struct {
	gateway *gateway.Service
}

func NewAdminHandler(gw *gateway.Service) *AdminHandler {
	return &AdminHandler{gateway: gw}
}

func (h *AdminHandler) GetFeeRate(c *fiber.Ctx) error {
	rate, err := h.gateway.GetPlatformFeeRate()
	if err != nil {
		return response.ServerError(c, err.Error())
	}
	return response.Success(c, "Platform fee rate", fiber.Map{"fee_rate_bps": rate})
}

func (h *AdminHandler) UpdateFeeRate(c *fiber.Ctx) error {
	var input struct {
		FeeRateBps uint64 `json:"fee_rate_bps"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if err := h.gateway.UpdateFeeRate(input.FeeRateBps, middleware.Caller(c)); err != nil {
		return response.Error(c, statusFor(err), err.Error())
	}
	return response.Success(c, "Fee rate updated", fiber.Map{"fee_rate_bps": input.FeeRateBps})
}

func (h *AdminHandler) EmergencyWithdraw(c *fiber.Ctx) error {
	var input struct {
		Amount uint64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if err := h.gateway.EmergencyWithdraw(c.Context(), input.Amount, middleware.Caller(c)); err != nil {
		return response.Error(c, statusFor(err), err.Error())
	}
	return response.Success(c, "Withdrawal complete", nil)
}
