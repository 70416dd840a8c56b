package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Game struct {
	gorm.Model

	Name        string `gorm:"uniqueIndex;size:100" json:"name"`
	Slug        string `gorm:"uniqueIndex;size:100" json:"slug"`
	Description string `gorm:"size:1000" json:"description"`
	ImageURL    string `gorm:"size:500" json:"image_url"`
	BannerURL   string `gorm:"size:500" json:"banner_url"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`

	Products []Product `gorm:"foreignKey:GameID" json:"products,omitempty"`
}

type Product struct {
	gorm.Model

	GameID      uint            `gorm:"index" json:"game_id"`
	Name        string          `gorm:"size:200" json:"name"`
	Description string          `gorm:"size:1000" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	Currency    string          `gorm:"size:3;default:IDR" json:"currency"`
	ProductType ProductType     `gorm:"size:32;index" json:"product_type"`

	// voucher products
	VoucherCodeTemplate string `gorm:"size:500" json:"voucher_code_template,omitempty"`

	// external provider products
	ExternalProviderType   ExternalProviderType `gorm:"size:32" json:"external_provider_type,omitempty"`
	ExternalProductID      string               `gorm:"size:100" json:"external_product_id,omitempty"`
	ExternalProviderConfig datatypes.JSONMap    `json:"external_provider_config,omitempty"`

	// nil means unlimited stock
	StockQuantity *int `json:"stock_quantity"`

	IsActive  bool              `gorm:"default:true" json:"is_active"`
	SortOrder int               `gorm:"default:0" json:"sort_order"`
	ExtraData datatypes.JSONMap `json:"extra_data,omitempty"`

	Game         Game          `gorm:"foreignKey:GameID" json:"-"`
	OrderItems   []OrderItem   `gorm:"foreignKey:ProductID" json:"-"`
	VoucherCodes []VoucherCode `gorm:"foreignKey:ProductID" json:"-"`
}

// HasStock reports whether at least qty units can still be sold.
// A nil StockQuantity means the product is never depleted.
func (p *Product) HasStock(qty int) bool {
	if p.StockQuantity == nil {
		return true
	}
	return *p.StockQuantity >= qty
}
