package schemas

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateHoldingRequest carries the user-supplied fields of a new holding.
// Valuation fields supplied on input are ignored.
type CreateHoldingRequest struct {
	AssetType     string          `json:"assetType"`
	Symbol        string          `json:"symbol"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	PurchaseDate  Date            `json:"purchaseDate"`
	Category      string          `json:"category"`
}

// UpdateHoldingRequest replaces the mutable fields of an existing holding.
type UpdateHoldingRequest struct {
	AssetType     string          `json:"assetType"`
	Symbol        string          `json:"symbol"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	PurchaseDate  Date            `json:"purchaseDate"`
	Category      string          `json:"category"`
}

// HoldingResponse is a holding enriched with the valuation fields.
// Everything below PurchaseDate/Category is derived and recomputed on
// every read.
type HoldingResponse struct {
	ID            uuid.UUID       `json:"id"`
	AssetType     string          `json:"assetType"`
	Symbol        string          `json:"symbol"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	PurchaseDate  Date            `json:"purchaseDate"`
	Category      string          `json:"category,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`

	CurrentPrice         decimal.Decimal `json:"currentPrice"`
	CurrentValue         decimal.Decimal `json:"currentValue"`
	ProfitLoss           decimal.Decimal `json:"profitLoss"`
	ProfitLossPercentage decimal.Decimal `json:"profitLossPercentage"`
	Currency             string          `json:"currency"`
	CurrencySymbol       string          `json:"currencySymbol"`
	CurrentValueInr      decimal.Decimal `json:"currentValueInr"`
	ProfitLossInr        decimal.Decimal `json:"profitLossInr"`
}
