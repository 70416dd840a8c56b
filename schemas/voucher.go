package schemas

type VoucherCodeCreate struct {
	ProductID    uint   `json:"product_id" validate:"required"`
	Code         string `json:"code" validate:"required,max=500"`
	SerialNumber string `json:"serial_number" validate:"omitempty,max=500"`
}
