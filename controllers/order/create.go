package order

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"
	"gamestore/schemas"
	"gamestore/services"

	"github.com/gofiber/fiber/v2"
)

// Create places an order. Authenticated requests own the order; anonymous
// requests must carry guest contact info instead.
func Create(c *fiber.Ctx) error {
	var req schemas.OrderCreate
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}

	if user, ok := c.Locals("user").(models.User); ok {
		userID := user.ID
		req.UserID = &userID
		req.GuestEmail = ""
		req.GuestPhone = ""
	} else {
		req.UserID = nil
	}

	if err := schemas.Validate(req); err != nil {
		return helpers.JSONAppError(c, err)
	}

	order, err := services.CreateOrder(database.DB, req)
	if err != nil {
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONCreated(c, "Order created", order)
}
