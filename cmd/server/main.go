// Package main starts the gateway HTTP server. It wires the configured
// store, the balance ledger, and the gateway core, then serves the API.
package main

import (
	"log"

	"paygate/internal/config"
	"paygate/internal/repositories"
	"paygate/internal/routes"
	"paygate/internal/services/balance"
	"paygate/internal/services/gateway"
	"paygate/internal/services/registry"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	operator := config.GetEnv("OPERATOR_ACCOUNT", "")
	if operator == "" {
		log.Fatal("OPERATOR_ACCOUNT must be set")
	}

	store, err := buildStore()
	if err != nil {
		log.Fatalf("failed to initialize store: %v", err)
	}

	// The balance service is an external collaborator in production; this
	// binary runs the in-memory reference ledger so the gateway is usable
	// standalone.
	ledger := balance.NewLedger()

	reg := registry.NewService(store, operator)
	gw := gateway.NewService(store, reg, ledger, gateway.Config{
		Operator:            operator,
		GatewayAccount:      config.GetEnv("GATEWAY_ACCOUNT", operator),
		MaxCustomerPayments: config.GetIntEnv("MAX_CUSTOMER_PAYMENTS", config.DefaultMaxCustomerPayments),
	})

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-API-Key",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(limiter.New(limiter.Config{
		Max: config.GetIntEnv("RATE_LIMIT", 100),
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.SetupRoutes(app, gw)

	port := config.GetEnv("PORT", "8080")
	log.Printf("gateway listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// buildStore picks the storage engine: postgres (with optional redis
// read-through cache) or the in-memory store for development.
func buildStore() (repositories.Store, error) {
	defaultRate := config.FeeRateSeed()

	if config.GetEnv("STORE_DRIVER", "memory") != "postgres" {
		return repositories.NewMemoryStore(defaultRate), nil
	}

	db, err := repositories.OpenDB()
	if err != nil {
		return nil, err
	}
	gormStore := repositories.NewGormStore(db)
	if err := gormStore.Migrate(defaultRate); err != nil {
		return nil, err
	}
	log.Println("connected to postgres")

	var store repositories.Store = gormStore
	if config.GetEnv("REDIS_ENABLED", "false") == "true" {
		store = repositories.NewCachedStore(gormStore, repositories.NewRedisClient())
		log.Println("redis cache enabled")
	}
	return store, nil
}
