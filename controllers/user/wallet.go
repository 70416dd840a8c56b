package user

import (
	"time"

	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"
	"gamestore/schemas"
	"gamestore/services"

	"github.com/gofiber/fiber/v2"
)

// Deposit opens a pending gateway deposit. The wallet is credited by the
// gateway callback, never on the caller's say-so.
func Deposit(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var req schemas.WalletDeposit
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if err := schemas.Validate(req); err != nil {
		return helpers.JSONAppError(c, err)
	}

	trx, err := services.CreateDeposit(database.DB, user.ID, req.Amount, req.PaymentMethod)
	if err != nil {
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONCreated(c, "Deposit created", fiber.Map{
		"transaction_reference": trx.TransactionReference,
		"status":                trx.Status,
		"amount":                trx.Amount,
	})
}

// DepositCallback receives the gateway's confirmation for a pending deposit.
func DepositCallback(c *fiber.Ctx) error {
	var req schemas.DepositCallback
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if err := schemas.Validate(req); err != nil {
		return helpers.JSONAppError(c, err)
	}

	trx, err := services.ConfirmDeposit(database.DB, req.TransactionReference, req.Status, time.Now())
	if err != nil {
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONSuccess(c, "Deposit callback processed", fiber.Map{
		"transaction_reference": trx.TransactionReference,
		"status":                trx.Status,
	})
}

func WalletTransactions(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	entries, err := services.WalletHistory(database.DB, user.ID, c.QueryInt("limit"))
	if err != nil {
		return helpers.JSONAppError(c, err)
	}
	return helpers.JSONSuccess(c, "Wallet history retrieved", entries)
}
