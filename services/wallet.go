package services

import (
	"errors"
	"fmt"
	"time"

	"gamestore/helpers"
	"gamestore/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplyWalletEntry mutates a user's wallet through the ledger. The user row
// is locked for the duration of the transaction, the ledger row and the new
// balance are written together or not at all.
func ApplyWalletEntry(db *gorm.DB, userID uint, trxType models.TransactionType, amount decimal.Decimal, refID, refType, description string) (*models.WalletTransaction, error) {
	var entry *models.WalletTransaction
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		e, err := models.NewWalletEntry(user.ID, user.WalletBalance, trxType, amount, refID, refType, description)
		if err != nil {
			return err
		}
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		if err := tx.Model(&user).Update("wallet_balance", e.BalanceAfter).Error; err != nil {
			return err
		}
		entry = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// CreateDeposit opens a pending gateway deposit. The wallet is only
// credited once the gateway confirms through ConfirmDeposit.
func CreateDeposit(db *gorm.DB, userID uint, amount decimal.Decimal, method models.PaymentMethod) (*models.Transaction, error) {
	id := userID
	trx := &models.Transaction{
		UserID:               &id,
		TransactionReference: helpers.TransactionReference(),
		TransactionType:      models.TrxDeposit,
		Amount:               amount,
		Currency:             "IDR",
		Status:               models.TrxStatusPending,
		Description:          fmt.Sprintf("Wallet deposit via %s", method),
	}
	if err := db.Create(trx).Error; err != nil {
		return nil, err
	}
	return trx, nil
}

// ConfirmDeposit settles a pending deposit from the gateway callback. The
// wallet credit and the transaction update land in one database transaction.
// A repeated callback with the current status is acknowledged without writes.
func ConfirmDeposit(db *gorm.DB, reference, status string, now time.Time) (*models.Transaction, error) {
	var trx models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("transaction_reference = ? AND transaction_type = ?", reference, models.TrxDeposit).
			First(&trx).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		// gateways retry callbacks; the repeat is not an error
		if trx.Status == status {
			return nil
		}
		if err := trx.Settle(status, now); err != nil {
			return err
		}
		if trx.Status == models.TrxStatusCompleted {
			if _, err := ApplyWalletEntry(tx, *trx.UserID, models.TrxDeposit, trx.Amount,
				trx.TransactionReference, "deposit", trx.Description); err != nil {
				return err
			}
		}
		return tx.Model(&trx).Select("status", "processed_at").Updates(&trx).Error
	})
	if err != nil {
		return nil, err
	}
	return &trx, nil
}

// WalletHistory returns the user's ledger, newest first.
func WalletHistory(db *gorm.DB, userID uint, limit int) ([]models.WalletTransaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var entries []models.WalletTransaction
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
