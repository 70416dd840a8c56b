package providers

import (
	"gamestore/models"
)

// TopupRequest carries everything a provider needs to fulfill one order item.
type TopupRequest struct {
	OrderNumber       string
	ExternalProductID string
	GameAccountID     string
	Quantity          int
}

// TopupResult is the provider's answer, kept raw for reconciliation.
type TopupResult struct {
	ReferenceID string
	Status      string
	Message     string
	Request     map[string]any
	Response    map[string]any
}

// Fulfiller is the contract an external top-up backend implements. The HTTP
// specifics live behind it; the commerce core only records the exchange.
type Fulfiller interface {
	Topup(provider models.ExternalProvider, req TopupRequest) (*TopupResult, error)
}

var fulfillers = map[models.ExternalProviderType]Fulfiller{}

func Register(t models.ExternalProviderType, f Fulfiller) {
	fulfillers[t] = f
}

func Get(t models.ExternalProviderType) Fulfiller {
	return fulfillers[t]
}
