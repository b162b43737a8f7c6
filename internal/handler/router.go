package handler

import (
	"go-inventory-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the Fiber application with all REST routes registered.
// Websocket routes are attached by the caller, which owns the hub.
func NewApp(inv *InventoryHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Inventory Service v1.0",
		ErrorHandler: ErrorHandler,
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestID())

	app.Get("/health", Health)

	app.Post("/inventory", inv.Create)
	app.Get("/inventory", inv.List)
	app.Get("/inventory/:id", inv.Get)
	app.Put("/inventory/:id", inv.Update)
	app.Delete("/inventory/:id", inv.Delete)
	app.Put("/inventory/:id/purchase", inv.Purchase)
	app.Get("/inventory/:id/restock-status", inv.RestockStatus)

	return app
}
