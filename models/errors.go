package models

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrConflict            = errors.New("duplicate value for unique field")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrOutOfStock          = errors.New("no stock available")
	ErrVoucherUsed         = errors.New("voucher code already used")
	ErrAmountMismatch      = errors.New("payment amount does not match order total")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrOrderOwnership      = errors.New("order needs either a user or guest contact, not both")
)
