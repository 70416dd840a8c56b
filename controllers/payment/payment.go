package payment

import (
	"time"

	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"
	"gamestore/schemas"
	"gamestore/services"

	"github.com/gofiber/fiber/v2"
)

func Create(c *fiber.Ctx) error {
	var req schemas.PaymentCreate
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if err := schemas.Validate(req); err != nil {
		return helpers.JSONAppError(c, err)
	}

	// wallet payments need the authenticated caller to match the order owner
	var callerID *uint
	if user, ok := c.Locals("user").(models.User); ok {
		id := user.ID
		callerID = &id
	}

	payment, err := services.CreatePayment(database.DB, req, callerID, time.Now())
	if err != nil {
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONCreated(c, "Payment created", payment)
}

func GetByReference(c *fiber.Ctx) error {
	payment, err := services.GetPaymentByReference(database.DB, c.Params("reference"))
	if err != nil {
		return helpers.JSONAppError(c, err)
	}
	return helpers.JSONSuccess(c, "Payment retrieved", fiber.Map{
		"payment_reference": payment.PaymentReference,
		"status":            payment.Status,
		"amount":            payment.Amount,
		"currency":          payment.Currency,
		"expires_at":        payment.ExpiresAt,
		"expired":           payment.Expired(time.Now()),
		"paid_at":           payment.PaidAt,
	})
}
