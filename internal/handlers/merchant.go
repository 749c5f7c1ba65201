package handlers

import (
	"paygate/internal/middleware"
	"paygate/internal/services/gateway"
	"paygate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type MerchantHandler struct {
	gateway *gateway.Service
}

func NewMerchantHandler(gw *gateway.Service) *MerchantHandler {
	return &MerchantHandler{gateway: gw}
}

// Register creates or overwrites a merchant record. Operator only; the core
// enforces it, the route group only narrows the surface.
func (h *MerchantHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Name          string `json:"name"`
		WalletAddress string `json:"wallet_address"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.Name == "" || input.WalletAddress == "" {
		return response.BadRequest(c, "name and wallet_address are required")
	}

	id, err := h.gateway.RegisterMerchant(input.Name, input.WalletAddress, middleware.Caller(c))
	if err != nil {
		return response.Error(c, statusFor(err), err.Error())
	}
	return response.Success(c, "Merchant registered", fiber.Map{"registration_id": id})
}

func (h *MerchantHandler) Deactivate(c *fiber.Ctx) error {
	err := h.gateway.DeactivateMerchant(c.Params("address"), middleware.Caller(c))
	if err != nil {
		return response.Error(c, statusFor(err), err.Error())
	}
	return response.Success(c, "Merchant deactivated", nil)
}

func (h *MerchantHandler) GetInfo(c *fiber.Ctx) error {
	m, err := h.gateway.GetMerchantInfo(c.Params("address"))
	if err != nil {
		return response.Error(c, statusFor(err), err.Error())
	}
	return response.Success(c, "Merchant details", m)
}

func (h *MerchantHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.gateway.GetMerchantStats(c.Params("address"))
	if err != nil {
		return response.Error(c, statusFor(err), err.Error())
	}
	return response.Success(c, "Merchant stats", stats)
}
