package schemas

import (
	"github.com/shopspring/decimal"
)

// PortfolioSummary aggregates all holdings in the reporting currency
// (INR). It is never persisted and is fully recomputed on every request.
type PortfolioSummary struct {
	TotalValue                decimal.Decimal            `json:"totalValue"`
	TotalInvestment           decimal.Decimal            `json:"totalInvestment"`
	TotalProfitLoss           decimal.Decimal            `json:"totalProfitLoss"`
	TotalProfitLossPercentage decimal.Decimal            `json:"totalProfitLossPercentage"`
	TotalHoldings             int                        `json:"totalHoldings"`
	CompositionByAssetType    map[string]decimal.Decimal `json:"compositionByAssetType"`
	CompositionByCategory     map[string]decimal.Decimal `json:"compositionByCategory"`
	Currency                  string                     `json:"currency"`
	CurrencySymbol            string                     `json:"currencySymbol"`
	ExchangeRate              decimal.Decimal            `json:"exchangeRate"`
}

// Risk levels reported by the diversification advisor.
const (
	RiskLevelNA       = "N/A"
	RiskLevelLow      = "Low"
	RiskLevelModerate = "Moderate"
	RiskLevelHigh     = "High"
	RiskLevelVeryHigh = "Very High"
)

// DiversificationSuggestion is the advisor's rule-based output.
type DiversificationSuggestion struct {
	NeedsDiversification bool                       `json:"needsDiversification"`
	RiskLevel            string                     `json:"riskLevel"`
	Recommendations      []string                   `json:"recommendations"`
	CategoryBreakdown    map[string]decimal.Decimal `json:"categoryBreakdown,omitempty"`
}
