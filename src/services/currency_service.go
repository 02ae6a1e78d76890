package services

import (
	"context"

	"portfolio-server/src/clients/exchangerate"
	"portfolio-server/src/config"
	"portfolio-server/src/models"
	"portfolio-server/src/utils"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ReportingCurrency is the currency all cross-asset totals are
// expressed in.
const (
	ReportingCurrency       = "INR"
	ReportingCurrencySymbol = "₹"
)

type CurrencyServiceI interface {
	GetUsdToInrRate(ctx context.Context) decimal.Decimal
	ConvertUsdToInr(amount, rate decimal.Decimal) decimal.Decimal
	ConvertToInr(amount decimal.Decimal, assetType string, rate decimal.Decimal) decimal.Decimal
	CurrencyCode(assetType string) string
	CurrencySymbol(assetType string) string
}

type CurrencyService struct {
	client      exchangerate.ExchangeRateClientI
	defaultRate decimal.Decimal
}

func NewCurrencyService(client exchangerate.ExchangeRateClientI, cfg *config.Config) *CurrencyService {
	return &CurrencyService{
		client:      client,
		defaultRate: decimal.NewFromFloat(cfg.Currency.DefaultUsdToInrRate),
	}
}

// GetUsdToInrRate returns the live USD→INR rate, or the configured
// default when the live rate is unavailable or non-positive. It never
// fails.
func (s *CurrencyService) GetUsdToInrRate(ctx context.Context) decimal.Decimal {
	rate, err := s.client.GetUsdToInrRate(ctx)
	if err != nil {
		utils.LoggerFromContext(ctx).Warnf("Error fetching live USD to INR rate: %v", err)
		return s.defaultRate
	}
	if !rate.IsPositive() {
		return s.defaultRate
	}
	return rate
}

// ConvertUsdToInr converts a USD amount at the given rate, rounded to 2
// decimal places half-up.
func (s *CurrencyService) ConvertUsdToInr(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(2)
}

// ConvertToInr restates an amount in the reporting currency. STOCK
// amounts are USD-quoted and converted; everything else is already INR
// and passes through unchanged.
func (s *CurrencyService) ConvertToInr(amount decimal.Decimal, assetType string, rate decimal.Decimal) decimal.Decimal {
	if assetType == models.AssetTypeStock {
		return s.ConvertUsdToInr(amount, rate)
	}
	return amount
}

// CurrencyCode maps an asset type to the currency its prices are quoted
// in. Unsupported types map to an empty code.
func (s *CurrencyService) CurrencyCode(assetType string) string {
	switch assetType {
	case models.AssetTypeStock:
		return "USD"
	case models.AssetTypeMutualFund:
		return "INR"
	default:
		return ""
	}
}

// CurrencySymbol returns the display symbol for an asset type's native
// currency.
func (s *CurrencyService) CurrencySymbol(assetType string) string {
	code := s.CurrencyCode(assetType)
	if code == "" {
		return ""
	}
	return money.GetCurrency(code).Grapheme
}
