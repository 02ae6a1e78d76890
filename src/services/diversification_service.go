package services

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"portfolio-server/src/models"
	"portfolio-server/src/schemas"
)

// referenceSectors is the fixed set a thinly-diversified portfolio is
// checked against.
var referenceSectors = []string{"Technology", "Healthcare", "Finance", "Consumer Goods", "Energy"}

var (
	concentrationHigh     = decimal.NewFromInt(40)
	concentrationModerate = decimal.NewFromInt(30)
	stockShareAdvisory    = decimal.NewFromInt(80)
	stockShareCritical    = decimal.NewFromInt(90)
)

type DiversificationServiceI interface {
	Advise(holdings []schemas.HoldingResponse, summary schemas.PortfolioSummary) schemas.DiversificationSuggestion
}

// DiversificationService applies threshold rules over the stock
// holdings of a portfolio. It is stateless and deterministic given
// identical inputs.
type DiversificationService struct{}

func NewDiversificationService() *DiversificationService {
	return &DiversificationService{}
}

// Advise produces the diversification suggestion for a set of enriched
// holdings and their portfolio summary. Only STOCK holdings with a
// non-empty category qualify for the concentration rules; they are
// measured by native (unconverted) current value.
func (s *DiversificationService) Advise(holdings []schemas.HoldingResponse, summary schemas.PortfolioSummary) schemas.DiversificationSuggestion {
	suggestion := schemas.DiversificationSuggestion{
		NeedsDiversification: false,
		RiskLevel:            schemas.RiskLevelNA,
		Recommendations:      make([]string, 0),
	}
	if len(holdings) == 0 {
		return suggestion
	}

	totalStockValue := decimal.Zero
	categoryValues := make(map[string]decimal.Decimal)
	for _, holding := range holdings {
		if holding.AssetType == models.AssetTypeStock && holding.Category != "" {
			totalStockValue = totalStockValue.Add(holding.CurrentValue)
			categoryValues[holding.Category] = categoryValues[holding.Category].Add(holding.CurrentValue)
		}
	}

	if totalStockValue.IsZero() {
		suggestion.RiskLevel = schemas.RiskLevelLow
		return suggestion
	}

	categoryPercentages := make(map[string]decimal.Decimal, len(categoryValues))
	for category, value := range categoryValues {
		categoryPercentages[category] = value.Div(totalStockValue).Mul(oneHundred).Round(4)
	}
	suggestion.CategoryBreakdown = make(map[string]decimal.Decimal, len(categoryPercentages))
	for category, percentage := range categoryPercentages {
		suggestion.CategoryBreakdown[category] = percentage.Round(2)
	}

	riskLevel := schemas.RiskLevelModerate

	// Per-category concentration. Categories are walked in sorted order
	// so the message list is stable across runs.
	categories := make([]string, 0, len(categoryPercentages))
	for category := range categoryPercentages {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		percentage := categoryPercentages[category]
		if percentage.GreaterThan(concentrationHigh) {
			suggestion.NeedsDiversification = true
			riskLevel = schemas.RiskLevelHigh
			suggestion.Recommendations = append(suggestion.Recommendations,
				fmt.Sprintf("High concentration in %s (%s%%). Consider diversifying into other sectors.", category, percentage.StringFixed(2)))
		} else if percentage.GreaterThan(concentrationModerate) {
			suggestion.Recommendations = append(suggestion.Recommendations,
				fmt.Sprintf("Moderate concentration in %s (%s%%). Monitor and consider diversification if it increases.", category, percentage.StringFixed(2)))
		}
	}

	// Category count.
	switch {
	case len(categoryValues) == 1:
		riskLevel = schemas.RiskLevelVeryHigh
		suggestion.NeedsDiversification = true
		suggestion.Recommendations = append(suggestion.Recommendations,
			"Portfolio is concentrated in a single category. Consider diversifying into multiple sectors.")
	case len(categoryValues) == 2:
		riskLevel = schemas.RiskLevelHigh
		suggestion.Recommendations = append(suggestion.Recommendations,
			"Portfolio has limited category diversification. Consider adding more sectors.")
	case len(categoryValues) >= 5:
		riskLevel = schemas.RiskLevelLow
		suggestion.Recommendations = append(suggestion.Recommendations,
			"Good diversification across multiple sectors!")
	}

	// Missing reference sectors, only while overall breadth is thin.
	if len(categoryValues) < 3 {
		for _, sector := range referenceSectors {
			if _, held := categoryValues[sector]; !held {
				suggestion.NeedsDiversification = true
				suggestion.Recommendations = append(suggestion.Recommendations,
					fmt.Sprintf("Consider adding holdings in the %s sector for better diversification.", sector))
			}
		}
	}

	// Asset-type concentration across the whole portfolio, from the
	// aggregator's output. The 90% branch is checked on top of the 80%
	// branch so both messages appear when the tighter threshold is hit.
	if stockShare, ok := StockShareOfPortfolio(summary); ok {
		if stockShare.GreaterThan(stockShareAdvisory) {
			suggestion.Recommendations = append(suggestion.Recommendations,
				fmt.Sprintf("High allocation to stocks (%s%%). Consider balancing with other asset types.", stockShare.StringFixed(2)))
			if stockShare.GreaterThan(stockShareCritical) {
				riskLevel = schemas.RiskLevelVeryHigh
				suggestion.NeedsDiversification = true
				suggestion.Recommendations = append(suggestion.Recommendations,
					fmt.Sprintf("Very high allocation to stocks (%s%%). This increases risk significantly.", stockShare.StringFixed(2)))
			}
		}
	}

	if len(suggestion.Recommendations) == 0 {
		suggestion.Recommendations = append(suggestion.Recommendations, "Your portfolio is well diversified!")
	}

	suggestion.RiskLevel = riskLevel
	return suggestion
}
