package payment

import (
	"log"
	"time"

	"gamestore/database"
	"gamestore/helpers"
	"gamestore/schemas"
	"gamestore/services"

	"github.com/gofiber/fiber/v2"
)

// Callback receives the payment gateway's status notification. The gateway
// retries until it gets a success envelope back, so repeats must succeed.
func Callback(c *fiber.Ctx) error {
	var req schemas.PaymentCallback
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if err := schemas.Validate(req); err != nil {
		return helpers.JSONAppError(c, err)
	}

	payment, err := services.ApplyPaymentCallback(database.DB, req, time.Now())
	if err != nil {
		log.Printf("❌ payment callback %s rejected: %v", req.PaymentReference, err)
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONSuccess(c, "Callback processed", fiber.Map{
		"payment_reference": payment.PaymentReference,
		"status":            payment.Status,
	})
}
