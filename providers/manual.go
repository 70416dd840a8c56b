package providers

import (
	"gamestore/models"
)

// ManualFulfiller parks the item for an admin to deliver by hand. It never
// talks to anything, so it can't fail.
type ManualFulfiller struct{}

func (ManualFulfiller) Topup(provider models.ExternalProvider, req TopupRequest) (*TopupResult, error) {
	return &TopupResult{
		ReferenceID: req.OrderNumber,
		Status:      "pending",
		Message:     "queued for manual processing",
		Request: map[string]any{
			"order_number":        req.OrderNumber,
			"external_product_id": req.ExternalProductID,
			"game_account_id":     req.GameAccountID,
			"quantity":            req.Quantity,
		},
	}, nil
}

func init() {
	Register(models.ProviderManual, ManualFulfiller{})
}
