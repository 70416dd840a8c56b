package admin

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/services"

	"github.com/gofiber/fiber/v2"
)

func ListLogs(c *fiber.Ctx) error {
	logs, err := services.ListAdminLogs(database.DB, c.QueryInt("limit"))
	if err != nil {
		return helpers.JSONAppError(c, err)
	}
	return helpers.JSONSuccess(c, "Admin logs retrieved", logs)
}
