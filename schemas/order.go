package schemas

import "gamestore/models"

type OrderItemCreate struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

type OrderCreate struct {
	UserID          *uint             `json:"user_id"`
	GuestEmail      string            `json:"guest_email" validate:"omitempty,max=255,emailfmt"`
	GuestPhone      string            `json:"guest_phone" validate:"omitempty,max=20"`
	GameAccountID   string            `json:"game_account_id" validate:"omitempty,max=200"`
	GameAccountInfo map[string]any    `json:"game_account_info"`
	Notes           string            `json:"notes" validate:"omitempty,max=1000"`
	Items           []OrderItemCreate `json:"items" validate:"required,min=1,dive"`
}

type OrderUpdate struct {
	Status     *models.OrderStatus `json:"status" validate:"omitempty,oneof=pending processing completed failed cancelled refunded"`
	AdminNotes *string             `json:"admin_notes" validate:"omitempty,max=1000"`
}
