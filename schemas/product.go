package schemas

import (
	"gamestore/models"

	"github.com/shopspring/decimal"
)

type ProductCreate struct {
	GameID               uint                        `json:"game_id" validate:"required"`
	Name                 string                      `json:"name" validate:"required,max=200"`
	Description          string                      `json:"description" validate:"omitempty,max=1000"`
	Price                decimal.Decimal             `json:"price" validate:"gte=0"`
	ProductType          models.ProductType          `json:"product_type" validate:"required,oneof=voucher external_provider"`
	VoucherCodeTemplate  string                      `json:"voucher_code_template" validate:"omitempty,max=500"`
	ExternalProviderType models.ExternalProviderType `json:"external_provider_type" validate:"omitempty,oneof=digiflazz manual"`
	ExternalProductID    string                      `json:"external_product_id" validate:"omitempty,max=100"`
	StockQuantity        *int                        `json:"stock_quantity" validate:"omitempty,min=0"`
}

type ProductUpdate struct {
	Name          *string          `json:"name" validate:"omitempty,max=200"`
	Description   *string          `json:"description" validate:"omitempty,max=1000"`
	Price         *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	StockQuantity *int             `json:"stock_quantity" validate:"omitempty,min=0"`
	IsActive      *bool            `json:"is_active"`
}
