package user

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"
	"gamestore/schemas"

	"github.com/gofiber/fiber/v2"
)

func Login(c *fiber.Ctx) error {
	var req schemas.UserLogin
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if err := schemas.Validate(req); err != nil {
		return helpers.JSONAppError(c, err)
	}

	var user models.User
	if err := database.DB.Where("email = ? AND is_active = true", req.Email).First(&user).Error; err != nil {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS")
	}
	if !helpers.CheckPassword(req.Password, user.PasswordHash) {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS")
	}

	token, err := helpers.GenerateToken(user.ID)
	if err != nil {
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONSuccess(c, "Login successful", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
		},
	})
}
