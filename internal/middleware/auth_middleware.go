package middleware

import (
	"strings"

	"storefront-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin rejects the request unless it carries the static admin token
// as "Authorization: Bearer <token>". The response never says which part
// was wrong.
func RequireAdmin(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := auth.Authorize(bearerToken(c.Get(fiber.HeaderAuthorization))); err != nil {
			return unauthorized(c)
		}
		return c.Next()
	}
}

// RequireAdminOrQueryToken also accepts ?token=, for websocket upgrades
// where browsers cannot set headers.
func RequireAdminOrQueryToken(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			token = c.Query("token")
		}
		if err := auth.Authorize(token); err != nil {
			return unauthorized(c)
		}
		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
}
