package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gamestore/helpers"
	"gamestore/models"
	"gamestore/schemas"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultExpiryMinutes = 60

// CreatePayment opens a funding attempt for an order. The amount has to
// match the order total exactly. Wallet payments settle immediately through
// the ledger and require callerID to be the order's own user; gateway
// payments stay pending until the callback arrives.
func CreatePayment(db *gorm.DB, req schemas.PaymentCreate, callerID *uint, now time.Time) (*models.Payment, error) {
	var payment *models.Payment
	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, req.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}
		if !req.Amount.Equal(order.TotalAmount) {
			return models.ErrAmountMismatch
		}

		expiresAt := now.Add(time.Duration(GetConfigInt(tx, "payment_expiry_minutes", defaultExpiryMinutes)) * time.Minute)
		p := &models.Payment{
			OrderID:          order.ID,
			PaymentReference: helpers.PaymentReference(),
			PaymentMethod:    req.PaymentMethod,
			Status:           models.PaymentPending,
			Amount:           req.Amount,
			Currency:         order.Currency,
			ReturnURL:        req.ReturnURL,
			ExpiresAt:        &expiresAt,
		}
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		if req.PaymentMethod == models.MethodWallet {
			if !order.WalletPayableBy(callerID) {
				return models.ErrOrderOwnership
			}
			if _, err := ApplyWalletEntry(tx, *order.UserID, models.TrxPurchase, p.Amount,
				p.PaymentReference, "payment",
				fmt.Sprintf("Payment for order %s", order.OrderNumber)); err != nil {
				return err
			}
			if err := p.TransitionTo(models.PaymentPaid, now); err != nil {
				return err
			}
			if err := tx.Model(p).
				Select("status", "paid_at").Updates(p).Error; err != nil {
				return err
			}
			if err := order.TransitionTo(models.OrderProcessing, now); err != nil {
				return err
			}
			if err := tx.Model(&order).
				Select("status", "processed_at").Updates(&order).Error; err != nil {
				return err
			}
		}

		payment = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// ApplyPaymentCallback consumes a gateway notification: look the payment up
// by reference, apply the requested status transition, keep the raw payload.
// A callback repeating the current status is acknowledged without writes.
func ApplyPaymentCallback(db *gorm.DB, req schemas.PaymentCallback, now time.Time) (*models.Payment, error) {
	var payment models.Payment
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("payment_reference = ?", req.PaymentReference).
			First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		// gateways retry callbacks; the repeat is not an error
		if payment.Status == req.Status {
			return nil
		}

		if err := payment.TransitionTo(req.Status, now); err != nil {
			return err
		}
		if req.DuitkuCallbackData != nil {
			payment.DuitkuCallbackData = req.DuitkuCallbackData
		}
		if err := tx.Model(&payment).
			Select("status", "paid_at", "duitku_callback_data").
			Updates(&payment).Error; err != nil {
			return err
		}

		if payment.Status == models.PaymentPaid {
			var order models.Order
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&order, payment.OrderID).Error; err != nil {
				return err
			}
			if order.Status == models.OrderPending {
				if err := order.TransitionTo(models.OrderProcessing, now); err != nil {
					return err
				}
				if err := tx.Model(&order).
					Select("status", "processed_at").Updates(&order).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// ExpirePendingPayments fails every pending payment whose deadline has
// passed. Returns how many rows were swept.
func ExpirePendingPayments(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Model(&models.Payment{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", models.PaymentPending, now).
		Update("status", models.PaymentFailed)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("⏰ Expired %d pending payments\n", res.RowsAffected)
	}
	return res.RowsAffected, nil
}

// GetPaymentByReference loads a payment by its unique reference.
func GetPaymentByReference(db *gorm.DB, reference string) (*models.Payment, error) {
	var payment models.Payment
	err := db.Where("payment_reference = ?", reference).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
