package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// logError records a failure the client only sees as a generic message.
func logError(c *fiber.Ctx, msg string, err error) {
	slog.Error(msg,
		"err", err,
		"method", c.Method(),
		"path", c.Path(),
		"request_id", c.Locals("requestid"))
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
}
