package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoucherMarkUsed(t *testing.T) {
	now := time.Now()
	code := &VoucherCode{ProductID: 1, Code: "GAME-1234"}

	require.NoError(t, code.MarkUsed(42, now))
	assert.True(t, code.IsUsed)
	require.NotNil(t, code.UsedAt)
	require.NotNil(t, code.OrderItemID)
	assert.Equal(t, uint(42), *code.OrderItemID)
	assert.True(t, code.Consistent())

	// consumption is one-way
	err := code.MarkUsed(99, now.Add(time.Minute))
	assert.ErrorIs(t, err, ErrVoucherUsed)
	assert.Equal(t, uint(42), *code.OrderItemID)
}

func TestVoucherConsistent(t *testing.T) {
	now := time.Now()
	itemID := uint(1)

	cases := []struct {
		name string
		code VoucherCode
		want bool
	}{
		{"fresh", VoucherCode{}, true},
		{"fully consumed", VoucherCode{IsUsed: true, UsedAt: &now, OrderItemID: &itemID}, true},
		{"used without timestamp", VoucherCode{IsUsed: true, OrderItemID: &itemID}, false},
		{"used without item", VoucherCode{IsUsed: true, UsedAt: &now}, false},
		{"unused with leftovers", VoucherCode{UsedAt: &now}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.code.Consistent())
		})
	}
}
