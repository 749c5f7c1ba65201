package handlers

import (
	"strconv"

	"paygate/internal/middleware"
	"paygate/internal/services/gateway"
	"paygate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	gateway *gateway.Service
}

func NewPaymentHandler(gw *gateway.Service) *PaymentHandler {
	return &PaymentHandler{gateway: gw}
}

// Create records a pending payment from the authenticated caller against a
// merchant.
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var input struct {
		Merchant  string `json:"merchant"`
		Amount    uint64 `json:"amount"`
		ProductID string `json:"product_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	id, err := h.gateway.CreatePayment(input.Merchant, input.Amount, input.ProductID, middleware.Caller(c))
	if err != nil {
		return response.Error(c, statusFor(err), err.Error())
	}
	return response.Success(c, "Payment created", fiber.Map{"payment_id": id})
}

func (h *PaymentHandler) Process(c *fiber.Ctx) error {
	id, err := paymentID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid payment id")
	}
	if err := h.gateway.ProcessPayment(c.Context(), id, middleware.Caller(c)); err != nil {
		return response.Error(c, statusFor(err), err.Error())
	}
	return response.Success(c, "Payment completed", nil)
}

func (h *PaymentHandler) Cancel(c *fiber.Ctx) error {
	id, err := paymentID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid payment id")
	}
	if err := h.gateway.CancelPayment(c.Context(), id, middleware.Caller(c)); err != nil {
		return response.Error(c, statusFor(err), err.Error())
	}
	return response.Success(c, "Payment cancelled", nil)
}

func (h *PaymentHandler) Refund(c *fiber.Ctx) error {
	id, err := paymentID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid payment id")
	}
	if err := h.gateway.RefundPayment(c.Context(), id, middleware.Caller(c)); err != nil {
		return response.Error(c, statusFor(err), err.Error())
	}
	return response.Success(c, "Payment refunded", nil)
}

func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	id, err := paymentID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid payment id")
	}
	p, err := h.gateway.GetPaymentDetails(id)
	if err != nil {
		return response.Error(c, statusFor(err), err.Error())
	}
	return response.Success(c, "Payment details", p)
}

func (h *PaymentHandler) Counter(c *fiber.Ctx) error {
	count, err := h.gateway.GetPaymentCounter()
	if err != nil {
		return response.ServerError(c, err.Error())
	}
	return response.Success(c, "Payment counter", fiber.Map{"counter": count})
}

func (h *PaymentHandler) CustomerPayments(c *fiber.Ctx) error {
	ids, err := h.gateway.GetCustomerPayments(c.Params("address"))
	if err != nil {
		return response.ServerError(c, err.Error())
	}
	return response.Success(c, "Customer payments", fiber.Map{"payment_ids": ids})
}

func paymentID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}
