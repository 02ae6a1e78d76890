package services

import (
	"context"

	"portfolio-server/src/clients/mfapi"
	"portfolio-server/src/clients/yahoofinance"
	"portfolio-server/src/models"
	"portfolio-server/src/utils"

	"github.com/shopspring/decimal"
)

type PriceServiceI interface {
	GetCurrentPrice(ctx context.Context, symbol, assetType string) decimal.Decimal
}

// PriceService dispatches quote lookups to the provider matching the
// asset type. Every failure degrades to a zero price so downstream
// arithmetic stays well-defined.
type PriceService struct {
	yahoo yahoofinance.YahooFinanceClientI
	mfapi mfapi.MFAPIClientI
}

func NewPriceService(yahoo yahoofinance.YahooFinanceClientI, mfapiClient mfapi.MFAPIClientI) *PriceService {
	return &PriceService{yahoo: yahoo, mfapi: mfapiClient}
}

// GetCurrentPrice returns the latest price for (symbol, assetType), or
// zero when the quote is unavailable or the asset type is unsupported.
func (s *PriceService) GetCurrentPrice(ctx context.Context, symbol, assetType string) decimal.Decimal {
	logger := utils.LoggerFromContext(ctx)

	switch assetType {
	case models.AssetTypeStock:
		price, err := s.yahoo.GetCurrentPrice(ctx, symbol)
		if err != nil {
			logger.Warnf("Error fetching price from Yahoo Finance for %s: %v", symbol, err)
			return decimal.Zero
		}
		return price
	case models.AssetTypeMutualFund, "MUTUAL-FUND", "MF":
		price, err := s.mfapi.GetLatestNAV(ctx, symbol)
		if err != nil {
			logger.Warnf("Error fetching mutual fund price for %s: %v", symbol, err)
			return decimal.Zero
		}
		return price
	default:
		logger.Warnf("Unsupported asset type: %s", assetType)
		return decimal.Zero
	}
}
