package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLineTotalExactArithmetic(t *testing.T) {
	cases := []struct {
		unitPrice string
		quantity  int
		want      string
	}{
		{"10000.00", 1, "10000.00"},
		{"19999.99", 3, "59999.97"},
		{"0.01", 100, "1.00"},
		{"1500.50", 7, "10503.50"},
	}
	for _, tc := range cases {
		got := LineTotal(dec(tc.unitPrice), tc.quantity)
		assert.Truef(t, got.Equal(dec(tc.want)), "%s x %d = %s, want %s",
			tc.unitPrice, tc.quantity, got, tc.want)
	}
}

func TestOrderItemPriceConsistent(t *testing.T) {
	item := OrderItem{Quantity: 3, UnitPrice: dec("19999.99"), TotalPrice: dec("59999.97")}
	assert.True(t, item.PriceConsistent())

	item.TotalPrice = dec("59999.98")
	assert.False(t, item.PriceConsistent())
}

func TestOrderItemsTotal(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{Quantity: 2, UnitPrice: dec("5000.00"), TotalPrice: dec("10000.00")},
			{Quantity: 1, UnitPrice: dec("2500.50"), TotalPrice: dec("2500.50")},
			{Quantity: 5, UnitPrice: dec("0.01"), TotalPrice: dec("0.05")},
		},
	}
	require.True(t, order.ItemsTotal().Equal(dec("12500.55")))

	order.TotalAmount = order.ItemsTotal()
	assert.True(t, order.TotalAmount.Equal(order.ItemsTotal()))
}

func TestOrderIsGuest(t *testing.T) {
	userID := uint(7)
	assert.False(t, (&Order{UserID: &userID}).IsGuest())
	assert.True(t, (&Order{GuestEmail: "buyer@example.com"}).IsGuest())
}

func TestOrderWalletPayableBy(t *testing.T) {
	owner := uint(7)
	other := uint(8)
	order := &Order{UserID: &owner}

	assert.True(t, order.WalletPayableBy(&owner))
	assert.False(t, order.WalletPayableBy(&other))
	assert.False(t, order.WalletPayableBy(nil))

	guest := &Order{GuestEmail: "buyer@example.com"}
	assert.False(t, guest.WalletPayableBy(&owner))
	assert.False(t, guest.WalletPayableBy(nil))
}

func TestOrderItemBeginDispatchIsOneShot(t *testing.T) {
	item := &OrderItem{}
	require.NoError(t, item.BeginDispatch())
	assert.Equal(t, "dispatching", item.ExternalStatus)

	// a second attempt must not reach the provider again
	assert.ErrorIs(t, item.BeginDispatch(), ErrConflict)

	sent := &OrderItem{ExternalStatus: "pending"}
	assert.ErrorIs(t, sent.BeginDispatch(), ErrConflict)

	delivered := &OrderItem{IsDelivered: true}
	assert.ErrorIs(t, delivered.BeginDispatch(), ErrConflict)
}
