package middlewares

import (
	"strings"

	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"

	"github.com/gofiber/fiber/v2"
)

// UserAuth resolves the bearer token to an active user and stores it in
// c.Locals("user").
func UserAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "TOKEN_REQUIRED")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_AUTH_HEADER")
	}

	userID, err := helpers.ParseToken(parts[1])
	if err != nil {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_TOKEN")
	}

	var user models.User
	if err := database.DB.Where("id = ? AND is_active = true", userID).First(&user).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "USER_NOT_FOUND_OR_INACTIVE")
	}

	c.Locals("user", user)
	return c.Next()
}
