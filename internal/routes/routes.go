// Package routes defines the API routing configuration: every public
// operation of the gateway core behind the authentication middleware.
package routes

import (
	"paygate/internal/handlers"
	"paygate/internal/middleware"
	"paygate/internal/services/gateway"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes wires the HTTP surface onto a gateway core instance.
func SetupRoutes(app *fiber.App, gw *gateway.Service) {
	merchantHandler := handlers.NewMerchantHandler(gw)
	paymentHandler := handlers.NewPaymentHandler(gw)
	adminHandler := handlers.NewAdminHandler(gw)

	api := app.Group("/api", middleware.Auth)

	merchants := api.Group("/merchants")
	merchants.Post("/", merchantHandler.Register)
	merchants.Post("/:address/deactivate", merchantHandler.Deactivate)
	merchants.Get("/:address/stats", merchantHandler.GetStats)
	merchants.Get("/:address", merchantHandler.GetInfo)

	payments := api.Group("/payments")
	payments.Post("/", paymentHandler.Create)
	payments.Get("/counter", paymentHandler.Counter)
	payments.Post("/:id/process", paymentHandler.Process)
	payments.Post("/:id/cancel", paymentHandler.Cancel)
	payments.Post("/:id/refund", paymentHandler.Refund)
	payments.Get("/:id", paymentHandler.Get)

	api.Get("/customers/:address/payments", paymentHandler.CustomerPayments)

	api.Get("/fee-rate", adminHandler.GetFeeRate)
	api.Put("/fee-rate", adminHandler.UpdateFeeRate)
	api.Post("/withdraw", adminHandler.EmergencyWithdraw)
}
