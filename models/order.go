package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model

	OrderNumber string `gorm:"uniqueIndex;size:50" json:"order_number"`
	UserID      *uint  `gorm:"index" json:"user_id,omitempty"`

	// guest orders carry contact info instead of a user id
	GuestEmail string `gorm:"size:255" json:"guest_email,omitempty"`
	GuestPhone string `gorm:"size:20" json:"guest_phone,omitempty"`

	Status      OrderStatus     `gorm:"size:32;index;default:pending" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`
	Currency    string          `gorm:"size:3;default:IDR" json:"currency"`

	GameAccountID   string            `gorm:"size:200" json:"game_account_id,omitempty"`
	GameAccountInfo datatypes.JSONMap `json:"game_account_info,omitempty"`

	Notes       string     `gorm:"size:1000" json:"notes,omitempty"`
	AdminNotes  string     `gorm:"size:1000" json:"admin_notes,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	User           *User                   `gorm:"foreignKey:UserID" json:"-"`
	Items          []OrderItem             `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payments       []Payment               `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
	ExternalOrders []ExternalProviderOrder `gorm:"foreignKey:OrderID" json:"-"`
}

// IsGuest reports whether the order belongs to no registered user.
func (o *Order) IsGuest() bool {
	return o.UserID == nil
}

// TransitionTo moves the order along the status machine. Illegal moves
// return ErrInvalidTransition and leave the order unchanged. Entering
// processing stamps ProcessedAt, entering completed stamps CompletedAt.
func (o *Order) TransitionTo(to OrderStatus, now time.Time) error {
	if !o.Status.CanTransition(to) {
		return ErrInvalidTransition
	}
	o.Status = to
	switch to {
	case OrderProcessing:
		o.ProcessedAt = &now
	case OrderCompleted:
		o.CompletedAt = &now
	}
	return nil
}

// WalletPayableBy reports whether the caller may settle the order from a
// wallet. Only the order's own registered user qualifies; guests and other
// callers cannot reach someone else's balance.
func (o *Order) WalletPayableBy(callerID *uint) bool {
	if o.UserID == nil || callerID == nil {
		return false
	}
	return *o.UserID == *callerID
}

// ItemsTotal sums the line totals in exact decimal arithmetic.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.TotalPrice)
	}
	return total
}

type OrderItem struct {
	gorm.Model

	OrderID    uint            `gorm:"index" json:"order_id"`
	ProductID  uint            `gorm:"index" json:"product_id"`
	Quantity   int             `gorm:"default:1" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2)" json:"unit_price"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_price"`

	IsDelivered  bool              `gorm:"default:false" json:"is_delivered"`
	DeliveredAt  *time.Time        `json:"delivered_at,omitempty"`
	DeliveryData datatypes.JSONMap `json:"delivery_data,omitempty"`

	ExternalReferenceID string `gorm:"size:200" json:"external_reference_id,omitempty"`
	ExternalStatus      string `gorm:"size:50" json:"external_status,omitempty"`

	Order        Order         `gorm:"foreignKey:OrderID" json:"-"`
	Product      Product       `gorm:"foreignKey:ProductID" json:"-"`
	VoucherCodes []VoucherCode `gorm:"foreignKey:OrderItemID" json:"voucher_codes,omitempty"`
}

// BeginDispatch marks the item as handed to the external provider.
// Dispatch is one-shot: an item that was already dispatched or delivered
// cannot be sent again.
func (i *OrderItem) BeginDispatch() error {
	if i.IsDelivered || i.ExternalStatus != "" {
		return ErrConflict
	}
	i.ExternalStatus = "dispatching"
	return nil
}

// LineTotal computes unit price times quantity without rounding drift.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// PriceConsistent verifies unit_price * quantity == total_price exactly.
func (i *OrderItem) PriceConsistent() bool {
	return LineTotal(i.UnitPrice, i.Quantity).Equal(i.TotalPrice)
}
