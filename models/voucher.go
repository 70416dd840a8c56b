package models

import (
	"time"

	"gorm.io/gorm"
)

type VoucherCode struct {
	gorm.Model

	ProductID    uint       `gorm:"index" json:"product_id"`
	Code         string     `gorm:"size:500" json:"code"`
	SerialNumber string     `gorm:"size:500" json:"serial_number,omitempty"`
	IsUsed       bool       `gorm:"default:false;index" json:"is_used"`
	UsedAt       *time.Time `json:"used_at,omitempty"`
	OrderItemID  *uint      `gorm:"index" json:"order_item_id,omitempty"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// MarkUsed consumes the code for the given order item. Consumption is
// one-way: a code that is already used stays untouched.
func (v *VoucherCode) MarkUsed(orderItemID uint, now time.Time) error {
	if v.IsUsed {
		return ErrVoucherUsed
	}
	v.IsUsed = true
	v.UsedAt = &now
	v.OrderItemID = &orderItemID
	return nil
}

// Consistent reports whether is_used, used_at and order_item_id agree:
// either all set or all empty.
func (v *VoucherCode) Consistent() bool {
	if v.IsUsed {
		return v.UsedAt != nil && v.OrderItemID != nil
	}
	return v.UsedAt == nil && v.OrderItemID == nil
}
