package order

import (
	"time"

	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"
	"gamestore/schemas"
	"gamestore/services"

	"github.com/gofiber/fiber/v2"
)

// auditChanges snapshots only the fields the request actually touched.
func auditChanges(before models.Order, req schemas.OrderUpdate, after models.Order) (map[string]any, map[string]any) {
	oldVals := map[string]any{}
	newVals := map[string]any{}
	if req.Status != nil {
		oldVals["status"] = string(before.Status)
		newVals["status"] = string(after.Status)
	}
	if req.AdminNotes != nil {
		oldVals["admin_notes"] = before.AdminNotes
		newVals["admin_notes"] = *req.AdminNotes
	}
	return oldVals, newVals
}

// Update lets an admin move an order through its status machine and attach
// admin notes. Every change lands in the audit log.
func Update(c *fiber.Ctx) error {
	admin, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var req schemas.OrderUpdate
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if err := schemas.Validate(req); err != nil {
		return helpers.JSONAppError(c, err)
	}

	var order models.Order
	if err := database.DB.First(&order, c.Params("id")).Error; err != nil {
		return helpers.JSONAppError(c, models.ErrNotFound)
	}
	before := order

	if req.Status != nil {
		updated, err := services.TransitionOrder(database.DB, order.ID, *req.Status, time.Now())
		if err != nil {
			return helpers.JSONAppError(c, err)
		}
		order = *updated
	}
	if req.AdminNotes != nil {
		if err := database.DB.Model(&order).Update("admin_notes", *req.AdminNotes).Error; err != nil {
			return helpers.JSONAppError(c, err)
		}
	}

	orderID := order.ID
	oldVals, newVals := auditChanges(before, req, order)
	if err := services.RecordAdminAction(database.DB, admin.ID, "update", "order", &orderID,
		oldVals, newVals,
		c.IP(), c.Get("User-Agent")); err != nil {
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONSuccess(c, "Order updated", order)
}

// Fulfill triggers delivery of a processing order's items.
func Fulfill(c *fiber.Ctx) error {
	admin, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var order models.Order
	if err := database.DB.First(&order, c.Params("id")).Error; err != nil {
		return helpers.JSONAppError(c, models.ErrNotFound)
	}

	store := services.GormVoucherStore{DB: database.DB}
	fulfilled, err := services.FulfillOrder(database.DB, store, order.ID, time.Now())
	if err != nil {
		return helpers.JSONAppError(c, err)
	}

	orderID := order.ID
	if err := services.RecordAdminAction(database.DB, admin.ID, "fulfill", "order", &orderID,
		map[string]any{"status": string(order.Status)},
		map[string]any{"status": string(fulfilled.Status)},
		c.IP(), c.Get("User-Agent")); err != nil {
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONSuccess(c, "Order fulfillment processed", fulfilled)
}
