package schemas

import (
	"gamestore/models"

	"github.com/shopspring/decimal"
)

// WalletDeposit funds the wallet through the gateway, so the wallet itself
// is not an accepted method.
type WalletDeposit struct {
	Amount        decimal.Decimal      `json:"amount" validate:"gt=0"`
	PaymentMethod models.PaymentMethod `json:"payment_method" validate:"required,oneof=duitku_bank_transfer duitku_ewallet duitku_virtual_account duitku_credit_card"`
}

type DepositCallback struct {
	TransactionReference string `json:"transaction_reference" validate:"required,max=100"`
	Status               string `json:"status" validate:"required,oneof=completed failed"`
}
