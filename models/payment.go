package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model

	OrderID          uint            `gorm:"index" json:"order_id"`
	PaymentReference string          `gorm:"uniqueIndex;size:100" json:"payment_reference"`
	PaymentMethod    PaymentMethod   `gorm:"size:32" json:"payment_method"`
	Status           PaymentStatus   `gorm:"size:32;index;default:pending" json:"status"`
	Amount           decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	Currency         string          `gorm:"size:3;default:IDR" json:"currency"`

	// Duitku gateway fields, filled by the gateway adapter
	DuitkuMerchantCode  string            `gorm:"size:20" json:"duitku_merchant_code,omitempty"`
	DuitkuPaymentMethod string            `gorm:"size:50" json:"duitku_payment_method,omitempty"`
	DuitkuReference     string            `gorm:"size:100" json:"duitku_reference,omitempty"`
	DuitkuCallbackData  datatypes.JSONMap `json:"duitku_callback_data,omitempty"`

	PaymentURL  string `gorm:"size:500" json:"payment_url,omitempty"`
	CallbackURL string `gorm:"size:500" json:"callback_url,omitempty"`
	ReturnURL   string `gorm:"size:500" json:"return_url,omitempty"`

	ExpiresAt *time.Time `gorm:"index" json:"expires_at,omitempty"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// TransitionTo moves the payment along the status machine. Entering paid
// stamps PaidAt. Illegal moves return ErrInvalidTransition and leave the
// payment unchanged.
func (p *Payment) TransitionTo(to PaymentStatus, now time.Time) error {
	if !p.Status.CanTransition(to) {
		return ErrInvalidTransition
	}
	p.Status = to
	if to == PaymentPaid {
		p.PaidAt = &now
	}
	return nil
}

// Expired reports whether a still-pending payment has passed its deadline.
// Payments without a deadline never expire.
func (p *Payment) Expired(now time.Time) bool {
	if p.Status != PaymentPending || p.ExpiresAt == nil {
		return false
	}
	return now.After(*p.ExpiresAt)
}
