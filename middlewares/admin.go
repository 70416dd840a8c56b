package middlewares

import (
	"crypto/subtle"
	"os"

	"gamestore/helpers"

	"github.com/gofiber/fiber/v2"
)

// AdminKey gates the admin surface behind the shared X-Admin-Key header.
// Runs after UserAuth so the audit trail knows which admin acted.
func AdminKey() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := os.Getenv("ADMIN_API_KEY")
		if key == "" {
			return helpers.JSONError(c, fiber.StatusForbidden, "ADMIN_ACCESS_DISABLED")
		}
		provided := c.Get("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			return helpers.JSONError(c, fiber.StatusForbidden, "INVALID_ADMIN_KEY")
		}
		return c.Next()
	}
}
