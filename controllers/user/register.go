package user

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"
	"gamestore/schemas"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func Register(c *fiber.Ctx) error {
	var req schemas.UserCreate
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if err := schemas.Validate(req); err != nil {
		return helpers.JSONAppError(c, err)
	}

	var count int64
	database.DB.Model(&models.User{}).
		Where("email = ? OR username = ?", req.Email, req.Username).
		Count(&count)
	if count > 0 {
		return helpers.JSONAppError(c, models.ErrConflict)
	}

	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		return helpers.JSONAppError(c, err)
	}

	user := models.User{
		Email:         req.Email,
		Username:      req.Username,
		FullName:      req.FullName,
		PhoneNumber:   req.PhoneNumber,
		PasswordHash:  hash,
		IsActive:      true,
		WalletBalance: decimal.Zero,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONCreated(c, "User registered successfully", fiber.Map{
		"id":       user.ID,
		"email":    user.Email,
		"username": user.Username,
	})
}
