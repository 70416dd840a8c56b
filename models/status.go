package models

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderFailed     OrderStatus = "failed"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

var orderNext = map[OrderStatus]map[OrderStatus]bool{
	OrderPending:    {OrderProcessing: true, OrderFailed: true, OrderCancelled: true},
	OrderProcessing: {OrderCompleted: true, OrderFailed: true, OrderCancelled: true},
	OrderCompleted:  {OrderRefunded: true},
	OrderFailed:     {},
	OrderCancelled:  {},
	OrderRefunded:   {},
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	return orderNext[s][to]
}

func (s OrderStatus) Valid() bool {
	_, ok := orderNext[s]
	return ok
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentRefunded  PaymentStatus = "refunded"
)

var paymentNext = map[PaymentStatus]map[PaymentStatus]bool{
	PaymentPending:   {PaymentPaid: true, PaymentFailed: true, PaymentCancelled: true},
	PaymentPaid:      {PaymentRefunded: true},
	PaymentFailed:    {},
	PaymentCancelled: {},
	PaymentRefunded:  {},
}

func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	return paymentNext[s][to]
}

func (s PaymentStatus) Valid() bool {
	_, ok := paymentNext[s]
	return ok
}
