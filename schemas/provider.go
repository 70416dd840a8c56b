package schemas

import "gamestore/models"

type ExternalProviderCreate struct {
	Name         string                      `json:"name" validate:"required,max=100"`
	ProviderType models.ExternalProviderType `json:"provider_type" validate:"required,oneof=digiflazz manual"`
	APIURL       string                      `json:"api_url" validate:"required,url,max=500"`
	APIKey       string                      `json:"api_key" validate:"required,max=255"`
	APISecret    string                      `json:"api_secret" validate:"omitempty,max=255"`
	Config       map[string]any              `json:"config"`
}
