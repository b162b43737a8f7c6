package handler

import "github.com/gofiber/fiber/v2"

// Health is the liveness probe used by external orchestration.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "OK"})
}
