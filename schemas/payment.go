package schemas

import (
	"gamestore/models"

	"github.com/shopspring/decimal"
)

type PaymentCreate struct {
	OrderID       uint                 `json:"order_id" validate:"required"`
	PaymentMethod models.PaymentMethod `json:"payment_method" validate:"required,oneof=wallet duitku_bank_transfer duitku_ewallet duitku_virtual_account duitku_credit_card"`
	Amount        decimal.Decimal      `json:"amount" validate:"gt=0"`
	ReturnURL     string               `json:"return_url" validate:"omitempty,max=500"`
}

type PaymentCallback struct {
	PaymentReference   string               `json:"payment_reference" validate:"required,max=100"`
	Status             models.PaymentStatus `json:"status" validate:"required,oneof=pending paid failed cancelled refunded"`
	DuitkuCallbackData map[string]any       `json:"duitku_callback_data"`
}
