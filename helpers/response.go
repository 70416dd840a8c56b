package helpers

import (
	"errors"

	"gamestore/models"
	"gamestore/schemas"

	"github.com/gofiber/fiber/v2"
)

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONCreated(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// JSONAppError translates domain errors into the response envelope.
// Validation failures carry the per-field messages in data.
func JSONAppError(c *fiber.Ctx, err error) error {
	var verrs schemas.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "VALIDATION_FAILED",
			"data":    verrs,
		})
	}

	switch {
	case errors.Is(err, models.ErrNotFound):
		return JSONError(c, fiber.StatusNotFound, "NOT_FOUND")
	case errors.Is(err, models.ErrConflict):
		return JSONError(c, fiber.StatusConflict, "DUPLICATE_VALUE")
	case errors.Is(err, models.ErrInvalidTransition):
		return JSONError(c, fiber.StatusConflict, "INVALID_STATUS_TRANSITION")
	case errors.Is(err, models.ErrInsufficientBalance):
		return JSONError(c, fiber.StatusBadRequest, "INSUFFICIENT_BALANCE")
	case errors.Is(err, models.ErrOutOfStock):
		return JSONError(c, fiber.StatusConflict, "OUT_OF_STOCK")
	case errors.Is(err, models.ErrAmountMismatch):
		return JSONError(c, fiber.StatusBadRequest, "AMOUNT_MISMATCH")
	case errors.Is(err, models.ErrInvalidAmount):
		return JSONError(c, fiber.StatusBadRequest, "INVALID_AMOUNT")
	case errors.Is(err, models.ErrOrderOwnership):
		return JSONError(c, fiber.StatusBadRequest, "ORDER_OWNERSHIP_REQUIRED")
	case errors.Is(err, models.ErrVoucherUsed):
		return JSONError(c, fiber.StatusConflict, "VOUCHER_ALREADY_USED")
	}
	return JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
}
