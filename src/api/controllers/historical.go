package controllers

import (
	"context"

	"portfolio-server/src/schemas"
)

type HistoricalControllerI interface {
	GetHistoricalPrices(ctx context.Context, symbol string) ([]schemas.HistoricalPriceResponse, error)
	FetchHistoricalData(ctx context.Context, symbol, assetType string) (int, error)
}

func (c *Controller) GetHistoricalPrices(ctx context.Context, symbol string) ([]schemas.HistoricalPriceResponse, error) {
	return c.HistoricalPriceService.GetHistoricalPrices(ctx, symbol)
}

func (c *Controller) FetchHistoricalData(ctx context.Context, symbol, assetType string) (int, error) {
	return c.HistoricalPriceService.FetchAndStoreHistoricalData(ctx, symbol, assetType)
}
