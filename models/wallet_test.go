package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWalletEntryDeposit(t *testing.T) {
	entry, err := NewWalletEntry(1, dec("100.00"), TrxDeposit, dec("50.00"), "TRX-1", "deposit", "top up")
	require.NoError(t, err)

	assert.True(t, entry.BalanceBefore.Equal(dec("100.00")))
	assert.True(t, entry.BalanceAfter.Equal(dec("150.00")))
	assert.True(t, entry.Consistent())
}

func TestNewWalletEntryPurchaseDebits(t *testing.T) {
	entry, err := NewWalletEntry(1, dec("100.00"), TrxPurchase, dec("40.00"), "PAY-1", "payment", "order")
	require.NoError(t, err)

	assert.True(t, entry.SignedAmount().Equal(dec("-40.00")))
	assert.True(t, entry.BalanceAfter.Equal(dec("60.00")))
	assert.True(t, entry.Consistent())
}

func TestNewWalletEntryInsufficientBalance(t *testing.T) {
	_, err := NewWalletEntry(1, dec("100.00"), TrxPurchase, dec("150.00"), "", "", "")
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	_, err = NewWalletEntry(1, dec("100.00"), TrxWithdrawal, dec("100.01"), "", "", "")
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// draining to exactly zero is fine
	entry, err := NewWalletEntry(1, dec("100.00"), TrxWithdrawal, dec("100.00"), "", "", "")
	require.NoError(t, err)
	assert.True(t, entry.BalanceAfter.IsZero())
}

func TestNewWalletEntryRejectsNonPositiveAmounts(t *testing.T) {
	_, err := NewWalletEntry(1, dec("100.00"), TrxDeposit, dec("0.00"), "", "", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewWalletEntry(1, dec("100.00"), TrxDeposit, dec("-5.00"), "", "", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestTransactionSettle(t *testing.T) {
	now := time.Now()

	trx := &Transaction{Status: TrxStatusPending}
	require.NoError(t, trx.Settle(TrxStatusCompleted, now))
	assert.Equal(t, TrxStatusCompleted, trx.Status)
	require.NotNil(t, trx.ProcessedAt)
	assert.Equal(t, now, *trx.ProcessedAt)

	// settlement is one-way
	err := trx.Settle(TrxStatusFailed, now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, TrxStatusCompleted, trx.Status)

	failed := &Transaction{Status: TrxStatusPending}
	require.NoError(t, failed.Settle(TrxStatusFailed, now))
	assert.ErrorIs(t, failed.Settle(TrxStatusCompleted, now), ErrInvalidTransition)

	bogus := &Transaction{Status: TrxStatusPending}
	assert.ErrorIs(t, bogus.Settle("refunded", now), ErrInvalidTransition)
	assert.Equal(t, TrxStatusPending, bogus.Status)
}

func TestTransactionTypeSigns(t *testing.T) {
	assert.True(t, TrxPurchase.IsDebit())
	assert.True(t, TrxWithdrawal.IsDebit())
	assert.False(t, TrxDeposit.IsDebit())
	assert.False(t, TrxRefund.IsDebit())
}

func TestWalletEntryChain(t *testing.T) {
	balance := dec("0.00")
	steps := []struct {
		trxType TransactionType
		amount  string
		after   string
	}{
		{TrxDeposit, "200.00", "200.00"},
		{TrxPurchase, "75.50", "124.50"},
		{TrxRefund, "75.50", "200.00"},
		{TrxWithdrawal, "199.99", "0.01"},
	}
	for _, s := range steps {
		entry, err := NewWalletEntry(1, balance, s.trxType, dec(s.amount), "", "", "")
		require.NoError(t, err)
		require.True(t, entry.Consistent())
		require.Truef(t, entry.BalanceAfter.Equal(dec(s.after)), "after %s %s: got %s", s.trxType, s.amount, entry.BalanceAfter)
		balance = entry.BalanceAfter
	}
}
