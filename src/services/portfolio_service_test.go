package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-server/src/models"
	"portfolio-server/src/schemas"
)

func newTestPortfolioService() *PortfolioService {
	return NewPortfolioService(newTestCurrencyService(decimal.Zero, nil))
}

func stockHolding(symbol, category string, quantity, purchasePrice, currentPrice, rate string) schemas.HoldingResponse {
	q, pp, cp, r := dec(quantity), dec(purchasePrice), dec(currentPrice), dec(rate)
	currentValue := cp.Mul(q).Round(2)
	purchaseValue := pp.Mul(q).Round(2)
	return schemas.HoldingResponse{
		AssetType:       models.AssetTypeStock,
		Symbol:          symbol,
		Category:        category,
		Quantity:        q,
		PurchasePrice:   pp,
		CurrentPrice:    cp,
		CurrentValue:    currentValue,
		ProfitLoss:      currentValue.Sub(purchaseValue),
		CurrentValueInr: currentValue.Mul(r).Round(2),
		ProfitLossInr:   currentValue.Mul(r).Round(2).Sub(purchaseValue.Mul(r).Round(2)),
	}
}

func fundHolding(symbol string, quantity, purchasePrice, currentPrice string) schemas.HoldingResponse {
	q, pp, cp := dec(quantity), dec(purchasePrice), dec(currentPrice)
	currentValue := cp.Mul(q).Round(2)
	purchaseValue := pp.Mul(q).Round(2)
	return schemas.HoldingResponse{
		AssetType:       models.AssetTypeMutualFund,
		Symbol:          symbol,
		Quantity:        q,
		PurchasePrice:   pp,
		CurrentPrice:    cp,
		CurrentValue:    currentValue,
		ProfitLoss:      currentValue.Sub(purchaseValue),
		CurrentValueInr: currentValue,
		ProfitLossInr:   currentValue.Sub(purchaseValue),
	}
}

func TestSummarizeEmptyPortfolio(t *testing.T) {
	svc := newTestPortfolioService()

	summary := svc.Summarize(nil, dec("89"))

	assert.Equal(t, 0, summary.TotalHoldings)
	assert.True(t, summary.TotalValue.IsZero())
	assert.True(t, summary.TotalInvestment.IsZero())
	assert.True(t, summary.TotalProfitLoss.IsZero())
	assert.NotNil(t, summary.CompositionByAssetType)
	assert.NotNil(t, summary.CompositionByCategory)
	assert.Equal(t, "INR", summary.Currency)
	assert.Equal(t, "₹", summary.CurrencySymbol)
	assert.Equal(t, "89", summary.ExchangeRate.String())
}

func TestSummarizeMixedPortfolio(t *testing.T) {
	svc := newTestPortfolioService()
	rate := dec("89")

	holdings := []schemas.HoldingResponse{
		stockHolding("AAPL", "Technology", "10", "150", "160", "89"),
		fundHolding("120503", "100", "80", "85.5"),
	}

	summary := svc.Summarize(holdings, rate)

	assert.Equal(t, 2, summary.TotalHoldings)
	assert.Equal(t, "150950", summary.TotalValue.String())
	assert.Equal(t, "141500", summary.TotalInvestment.String())
	assert.Equal(t, "9450", summary.TotalProfitLoss.String())
	assert.Equal(t, "6.68", summary.TotalProfitLossPercentage.String())

	assert.Equal(t, "142400", summary.CompositionByAssetType[models.AssetTypeStock].String())
	assert.Equal(t, "8550", summary.CompositionByAssetType[models.AssetTypeMutualFund].String())
	assert.Equal(t, "142400", summary.CompositionByCategory["Technology"].String())
	// Holdings without a category are left out of the category map.
	assert.Len(t, summary.CompositionByCategory, 1)
}

func TestBestAndWorstPerformer(t *testing.T) {
	svc := newTestPortfolioService()

	holdings := []schemas.HoldingResponse{
		{Symbol: "A", ProfitLossPercentage: dec("5")},
		{Symbol: "B", ProfitLossPercentage: dec("-12.5")},
		{Symbol: "C", ProfitLossPercentage: dec("20")},
	}

	best := svc.BestPerformer(holdings)
	require.NotNil(t, best)
	assert.Equal(t, "C", best.Symbol)

	worst := svc.WorstPerformer(holdings)
	require.NotNil(t, worst)
	assert.Equal(t, "B", worst.Symbol)

	assert.Nil(t, svc.BestPerformer(nil))
}
