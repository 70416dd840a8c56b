package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExternalProvider struct {
	gorm.Model

	Name         string               `gorm:"size:100" json:"name"`
	ProviderType ExternalProviderType `gorm:"size:32;index" json:"provider_type"`
	IsActive     bool                 `gorm:"default:true" json:"is_active"`

	APIURL    string `gorm:"size:500" json:"api_url"`
	APIKey    string `gorm:"size:255" json:"-"`
	APISecret string `gorm:"size:255" json:"-"`

	Config datatypes.JSONMap `json:"config,omitempty"`

	ExternalOrders []ExternalProviderOrder `gorm:"foreignKey:ProviderID" json:"-"`
}

// ExternalProviderOrder tracks one fulfillment request sent to a provider,
// including the raw request and response payloads for reconciliation.
type ExternalProviderOrder struct {
	gorm.Model

	OrderID    uint `gorm:"index" json:"order_id"`
	ProviderID uint `gorm:"index" json:"provider_id"`

	ProviderReferenceID string `gorm:"size:200;index" json:"provider_reference_id"`
	ProviderStatus      string `gorm:"size:50" json:"provider_status"`
	ProviderMessage     string `gorm:"size:1000" json:"provider_message,omitempty"`

	RequestData  datatypes.JSONMap `json:"request_data,omitempty"`
	ResponseData datatypes.JSONMap `json:"response_data,omitempty"`

	SentAt        time.Time  `json:"sent_at"`
	LastUpdatedAt time.Time  `json:"last_updated_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`

	Order    Order            `gorm:"foreignKey:OrderID" json:"-"`
	Provider ExternalProvider `gorm:"foreignKey:ProviderID" json:"-"`
}
