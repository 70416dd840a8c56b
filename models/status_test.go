package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderPending, OrderProcessing, true},
		{OrderPending, OrderFailed, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderCompleted, false},
		{OrderPending, OrderRefunded, false},
		{OrderProcessing, OrderCompleted, true},
		{OrderProcessing, OrderFailed, true},
		{OrderProcessing, OrderCancelled, true},
		{OrderProcessing, OrderPending, false},
		{OrderCompleted, OrderRefunded, true},
		{OrderCompleted, OrderProcessing, false},
		{OrderFailed, OrderProcessing, false},
		{OrderCancelled, OrderPending, false},
		{OrderRefunded, OrderCompleted, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderTransitionToStampsTimestamps(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order := &Order{Status: OrderPending}

	require.NoError(t, order.TransitionTo(OrderProcessing, now))
	require.NotNil(t, order.ProcessedAt)
	assert.Equal(t, now, *order.ProcessedAt)
	assert.Nil(t, order.CompletedAt)

	later := now.Add(5 * time.Minute)
	require.NoError(t, order.TransitionTo(OrderCompleted, later))
	require.NotNil(t, order.CompletedAt)
	assert.Equal(t, later, *order.CompletedAt)
}

func TestOrderTransitionToRejectsIllegalMove(t *testing.T) {
	order := &Order{Status: OrderCompleted}
	err := order.TransitionTo(OrderProcessing, time.Now())

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, OrderCompleted, order.Status)
	assert.Nil(t, order.ProcessedAt)
}

func TestPaymentStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to PaymentStatus
		allowed  bool
	}{
		{PaymentPending, PaymentPaid, true},
		{PaymentPending, PaymentFailed, true},
		{PaymentPending, PaymentCancelled, true},
		{PaymentPending, PaymentRefunded, false},
		{PaymentPaid, PaymentRefunded, true},
		{PaymentPaid, PaymentPending, false},
		{PaymentPaid, PaymentFailed, false},
		{PaymentFailed, PaymentPaid, false},
		{PaymentCancelled, PaymentPaid, false},
		{PaymentRefunded, PaymentPaid, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestPaymentTransitionToStampsPaidAt(t *testing.T) {
	now := time.Now()
	p := &Payment{Status: PaymentPending}

	require.NoError(t, p.TransitionTo(PaymentPaid, now))
	require.NotNil(t, p.PaidAt)
	assert.Equal(t, now, *p.PaidAt)

	err := p.TransitionTo(PaymentPending, now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, PaymentPaid, p.Status)
}
