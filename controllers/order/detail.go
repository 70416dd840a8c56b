package order

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"
	"gamestore/services"

	"github.com/gofiber/fiber/v2"
)

func GetByNumber(c *fiber.Ctx) error {
	order, err := services.GetOrderByNumber(database.DB, c.Params("number"))
	if err != nil {
		return helpers.JSONAppError(c, err)
	}

	// guests may look an order up by number; registered orders are only
	// visible to their owner
	if order.UserID != nil {
		user, ok := c.Locals("user").(models.User)
		if !ok || user.ID != *order.UserID {
			return helpers.JSONAppError(c, models.ErrNotFound)
		}
	}

	return helpers.JSONSuccess(c, "Order retrieved", order)
}

func ListMine(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	orders, err := services.ListUserOrders(database.DB, user.ID, c.QueryInt("limit"))
	if err != nil {
		return helpers.JSONAppError(c, err)
	}
	return helpers.JSONSuccess(c, "Orders retrieved", orders)
}
