package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireJSON answers 415 when a request with a body does not declare a
// JSON content type. Bodiless requests pass through.
func RequireJSON() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(c.Body()) == 0 {
			return c.Next()
		}
		ct := strings.ToLower(c.Get(fiber.HeaderContentType))
		if !strings.HasPrefix(ct, fiber.MIMEApplicationJSON) {
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
				"message": "Content-Type must be application/json",
			})
		}
		return c.Next()
	}
}
