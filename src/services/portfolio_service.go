package services

import (
	"github.com/shopspring/decimal"

	"portfolio-server/src/models"
	"portfolio-server/src/schemas"
)

type PortfolioServiceI interface {
	Summarize(holdings []schemas.HoldingResponse, rate decimal.Decimal) schemas.PortfolioSummary
	BestPerformer(holdings []schemas.HoldingResponse) *schemas.HoldingResponse
	WorstPerformer(holdings []schemas.HoldingResponse) *schemas.HoldingResponse
}

// PortfolioService aggregates enriched holdings into portfolio-level
// totals and composition breakdowns, all in the reporting currency.
type PortfolioService struct {
	currency CurrencyServiceI
}

func NewPortfolioService(currency CurrencyServiceI) *PortfolioService {
	return &PortfolioService{currency: currency}
}

// Summarize is a pure aggregation over already-enriched holdings. An
// empty input yields the canonical zero summary, never an error.
func (s *PortfolioService) Summarize(holdings []schemas.HoldingResponse, rate decimal.Decimal) schemas.PortfolioSummary {
	summary := schemas.PortfolioSummary{
		TotalValue:                decimal.Zero,
		TotalInvestment:           decimal.Zero,
		TotalProfitLoss:           decimal.Zero,
		TotalProfitLossPercentage: decimal.Zero,
		TotalHoldings:             len(holdings),
		CompositionByAssetType:    make(map[string]decimal.Decimal),
		CompositionByCategory:     make(map[string]decimal.Decimal),
		Currency:                  ReportingCurrency,
		CurrencySymbol:            ReportingCurrencySymbol,
		ExchangeRate:              rate,
	}
	if len(holdings) == 0 {
		return summary
	}

	totalCurrentValueInr := decimal.Zero
	totalInvestmentInr := decimal.Zero
	assetComposition := make(map[string]decimal.Decimal)
	categoryComposition := make(map[string]decimal.Decimal)

	for _, holding := range holdings {
		totalCurrentValueInr = totalCurrentValueInr.Add(holding.CurrentValueInr)

		// Each purchase value is converted independently rather than
		// derived from the profit/loss field, so the total does not
		// accumulate double-rounding drift.
		purchaseValue := holding.PurchasePrice.Mul(holding.Quantity).Round(2)
		purchaseValueInr := s.currency.ConvertToInr(purchaseValue, holding.AssetType, rate)
		totalInvestmentInr = totalInvestmentInr.Add(purchaseValueInr)

		assetComposition[holding.AssetType] = assetComposition[holding.AssetType].Add(holding.CurrentValueInr)

		if holding.Category != "" {
			categoryComposition[holding.Category] = categoryComposition[holding.Category].Add(holding.CurrentValueInr)
		}
	}

	totalProfitLoss := totalCurrentValueInr.Sub(totalInvestmentInr)

	profitLossPercentage := decimal.Zero
	if totalInvestmentInr.IsPositive() {
		profitLossPercentage = totalProfitLoss.Div(totalInvestmentInr).Mul(oneHundred).Round(4)
	}

	summary.TotalValue = totalCurrentValueInr.Round(2)
	summary.TotalInvestment = totalInvestmentInr.Round(2)
	summary.TotalProfitLoss = totalProfitLoss.Round(2)
	summary.TotalProfitLossPercentage = profitLossPercentage.Round(2)

	for assetType, value := range assetComposition {
		summary.CompositionByAssetType[assetType] = value.Round(2)
	}
	for category, value := range categoryComposition {
		summary.CompositionByCategory[category] = value.Round(2)
	}

	return summary
}

// BestPerformer returns the holding with the highest profit/loss
// percentage, or nil for an empty portfolio.
func (s *PortfolioService) BestPerformer(holdings []schemas.HoldingResponse) *schemas.HoldingResponse {
	var best *schemas.HoldingResponse
	for i := range holdings {
		if best == nil || holdings[i].ProfitLossPercentage.GreaterThan(best.ProfitLossPercentage) {
			best = &holdings[i]
		}
	}
	return best
}

// WorstPerformer returns the holding with the lowest profit/loss
// percentage, or nil for an empty portfolio.
func (s *PortfolioService) WorstPerformer(holdings []schemas.HoldingResponse) *schemas.HoldingResponse {
	var worst *schemas.HoldingResponse
	for i := range holdings {
		if worst == nil || holdings[i].ProfitLossPercentage.LessThan(worst.ProfitLossPercentage) {
			worst = &holdings[i]
		}
	}
	return worst
}

// StockShareOfPortfolio returns the STOCK bucket's percentage of total
// portfolio value from a summary, and whether a STOCK bucket exists.
func StockShareOfPortfolio(summary schemas.PortfolioSummary) (decimal.Decimal, bool) {
	stockValue, ok := summary.CompositionByAssetType[models.AssetTypeStock]
	if !ok || !summary.TotalValue.IsPositive() {
		return decimal.Zero, false
	}
	return stockValue.Div(summary.TotalValue).Mul(oneHundred).Round(4), true
}
