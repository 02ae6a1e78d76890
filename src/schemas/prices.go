package schemas

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistoricalPriceResponse is one stored price point for trend display.
type HistoricalPriceResponse struct {
	ID        uuid.UUID       `json:"id"`
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	PriceDate Date            `json:"priceDate"`
}
