package handlers

import (
	"errors"

	domain "paygate/internal/errors"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps a domain error to its HTTP status. Unknown errors are
// internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrMerchantNotFound),
		errors.Is(err, domain.ErrMerchantNotRegistered):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrAlreadyProcessed),
		errors.Is(err, domain.ErrInvalidStatus):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInsufficientBalance):
		return fiber.StatusPaymentRequired
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidProductID),
		errors.Is(err, domain.ErrInvalidRate),
		errors.Is(err, domain.ErrIndexOverflow):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
