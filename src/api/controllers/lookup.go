package controllers

import (
	"context"

	"portfolio-server/src/schemas"
)

type LookupControllerI interface {
	SearchStocks(ctx context.Context, keywords string) (*schemas.StockSearchResponse, error)
	GetStockDetails(ctx context.Context, symbol string) (*schemas.StockDetails, error)
	SearchMutualFunds(ctx context.Context, keywords string) (*schemas.MutualFundSearchResponse, error)
	GetMutualFundDetails(ctx context.Context, schemeCode string) (*schemas.MutualFundDetails, error)
}

func (c *Controller) SearchStocks(ctx context.Context, keywords string) (*schemas.StockSearchResponse, error) {
	return c.LookupService.SearchStocks(ctx, keywords)
}

func (c *Controller) GetStockDetails(ctx context.Context, symbol string) (*schemas.StockDetails, error) {
	return c.LookupService.GetStockDetails(ctx, symbol)
}

func (c *Controller) SearchMutualFunds(ctx context.Context, keywords string) (*schemas.MutualFundSearchResponse, error) {
	return c.LookupService.SearchMutualFunds(ctx, keywords)
}

func (c *Controller) GetMutualFundDetails(ctx context.Context, schemeCode string) (*schemas.MutualFundDetails, error) {
	return c.LookupService.GetMutualFundDetails(ctx, schemeCode)
}
