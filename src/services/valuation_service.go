package services

import (
	"context"
	"strings"

	"portfolio-server/src/models"
	"portfolio-server/src/schemas"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

type ValuationServiceI interface {
	Enrich(ctx context.Context, holding *models.Holding, rate decimal.Decimal) schemas.HoldingResponse
}

// ValuationService computes the derived fields of a holding from its
// persisted fields and a live quote. Derived values are recomputed on
// every read and never trusted from input.
type ValuationService struct {
	prices   PriceServiceI
	currency CurrencyServiceI
}

func NewValuationService(prices PriceServiceI, currency CurrencyServiceI) *ValuationService {
	return &ValuationService{prices: prices, currency: currency}
}

// Enrich values one holding at the given USD→INR rate. The asset type
// is normalized to uppercase on the holding itself before any derived
// computation. An unavailable quote resolves to a zero price, never an
// error.
func (s *ValuationService) Enrich(ctx context.Context, holding *models.Holding, rate decimal.Decimal) schemas.HoldingResponse {
	holding.AssetType = strings.ToUpper(holding.AssetType)

	currentPrice := s.prices.GetCurrentPrice(ctx, holding.Symbol, holding.AssetType)

	currentValue := currentPrice.Mul(holding.Quantity).Round(2)
	purchaseValue := holding.PurchasePrice.Mul(holding.Quantity).Round(2)
	profitLoss := currentValue.Sub(purchaseValue)

	// Zero or negative purchase value would divide by zero; the
	// percentage is defined as zero there.
	profitLossPercentage := decimal.Zero
	if purchaseValue.IsPositive() {
		profitLossPercentage = profitLoss.Div(purchaseValue).Mul(oneHundred).Round(4)
	}

	currentValueInr := s.currency.ConvertToInr(currentValue, holding.AssetType, rate)
	purchaseValueInr := s.currency.ConvertToInr(purchaseValue, holding.AssetType, rate)
	// Subtracting the converted operands keeps the INR profit/loss
	// consistent with the INR values shown next to it; converting the
	// native profit/loss directly can round to a different figure.
	profitLossInr := currentValueInr.Sub(purchaseValueInr)

	return schemas.HoldingResponse{
		ID:            holding.ID,
		AssetType:     holding.AssetType,
		Symbol:        holding.Symbol,
		Quantity:      holding.Quantity,
		PurchasePrice: holding.PurchasePrice,
		PurchaseDate:  schemas.NewDate(holding.PurchaseDate),
		Category:      holding.Category,
		CreatedAt:     holding.CreatedAt,

		CurrentPrice:         currentPrice,
		CurrentValue:         currentValue,
		ProfitLoss:           profitLoss,
		ProfitLossPercentage: profitLossPercentage,
		Currency:             s.currency.CurrencyCode(holding.AssetType),
		CurrencySymbol:       s.currency.CurrencySymbol(holding.AssetType),
		CurrentValueInr:      currentValueInr,
		ProfitLossInr:        profitLossInr,
	}
}
