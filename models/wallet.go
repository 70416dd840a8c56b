package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WalletTransaction is one entry of the append-only wallet ledger. The
// ledger is the source of truth: User.WalletBalance must always equal the
// BalanceAfter of the user's newest entry.
type WalletTransaction struct {
	gorm.Model

	UserID          uint              `gorm:"index" json:"user_id"`
	TransactionType TransactionType   `gorm:"size:16" json:"transaction_type"`
	Amount          decimal.Decimal   `gorm:"type:decimal(12,2)" json:"amount"`
	BalanceBefore   decimal.Decimal   `gorm:"type:decimal(12,2)" json:"balance_before"`
	BalanceAfter    decimal.Decimal   `gorm:"type:decimal(12,2)" json:"balance_after"`
	ReferenceID     string            `gorm:"size:100;index" json:"reference_id,omitempty"`
	ReferenceType   string            `gorm:"size:50" json:"reference_type,omitempty"` // order, payment, deposit
	Description     string            `gorm:"size:500" json:"description"`
	ExtraData       datatypes.JSONMap `json:"extra_data,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// SignedAmount is the delta the entry applies to the balance: negative for
// debits (purchase, withdrawal), positive for credits (deposit, refund).
func (w *WalletTransaction) SignedAmount() decimal.Decimal {
	if w.TransactionType.IsDebit() {
		return w.Amount.Neg()
	}
	return w.Amount
}

// Consistent verifies balance_after = balance_before + signed(amount).
func (w *WalletTransaction) Consistent() bool {
	return w.BalanceBefore.Add(w.SignedAmount()).Equal(w.BalanceAfter)
}

// NewWalletEntry builds the ledger row for applying amount of the given
// type against balance. Debits exceeding the balance fail with
// ErrInsufficientBalance before anything is written.
func NewWalletEntry(userID uint, balance decimal.Decimal, trxType TransactionType, amount decimal.Decimal, refID, refType, description string) (*WalletTransaction, error) {
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	entry := &WalletTransaction{
		UserID:          userID,
		TransactionType: trxType,
		Amount:          amount,
		BalanceBefore:   balance,
		ReferenceID:     refID,
		ReferenceType:   refType,
		Description:     description,
	}
	after := balance.Add(entry.SignedAmount())
	if after.Sign() < 0 {
		return nil, ErrInsufficientBalance
	}
	entry.BalanceAfter = after
	return entry, nil
}

const (
	TrxStatusPending   = "pending"
	TrxStatusCompleted = "completed"
	TrxStatusFailed    = "failed"
)

// Transaction is the general purpose money movement record, optionally
// linked to an order or payment.
type Transaction struct {
	gorm.Model

	UserID               *uint             `gorm:"index" json:"user_id,omitempty"`
	TransactionReference string            `gorm:"uniqueIndex;size:100" json:"transaction_reference"`
	TransactionType      TransactionType   `gorm:"size:16" json:"transaction_type"`
	Amount               decimal.Decimal   `gorm:"type:decimal(12,2)" json:"amount"`
	Currency             string            `gorm:"size:3;default:IDR" json:"currency"`
	Status               string            `gorm:"size:50" json:"status"`
	OrderID              *uint             `gorm:"index" json:"order_id,omitempty"`
	PaymentID            *uint             `gorm:"index" json:"payment_id,omitempty"`
	Description          string            `gorm:"size:500" json:"description"`
	ExtraData            datatypes.JSONMap `json:"extra_data,omitempty"`
	ProcessedAt          *time.Time        `json:"processed_at,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// Settle moves a pending transaction to a terminal status and stamps
// ProcessedAt. Settlement is one-way.
func (t *Transaction) Settle(status string, now time.Time) error {
	if t.Status != TrxStatusPending {
		return ErrInvalidTransition
	}
	if status != TrxStatusCompleted && status != TrxStatusFailed {
		return ErrInvalidTransition
	}
	t.Status = status
	t.ProcessedAt = &now
	return nil
}
