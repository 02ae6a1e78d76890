package controllers

import (
	"context"

	"github.com/google/uuid"

	"portfolio-server/src/schemas"
	"portfolio-server/src/utils"
)

type HoldingsControllerI interface {
	GetAllHoldings(ctx context.Context) ([]schemas.HoldingResponse, error)
	GetHoldingByID(ctx context.Context, id uuid.UUID) (*schemas.HoldingResponse, error)
	GetHoldingsByAssetType(ctx context.Context, assetType string) ([]schemas.HoldingResponse, error)
	CreateHolding(ctx context.Context, req schemas.CreateHoldingRequest) (*schemas.HoldingResponse, error)
	UpdateHolding(ctx context.Context, id uuid.UUID, req schemas.UpdateHoldingRequest) (*schemas.HoldingResponse, error)
	DeleteHolding(ctx context.Context, id uuid.UUID) error
}

func (c *Controller) GetAllHoldings(ctx context.Context) ([]schemas.HoldingResponse, error) {
	return c.HoldingService.GetAllHoldings(ctx)
}

func (c *Controller) GetHoldingByID(ctx context.Context, id uuid.UUID) (*schemas.HoldingResponse, error) {
	return c.HoldingService.GetHolding(ctx, id)
}

func (c *Controller) GetHoldingsByAssetType(ctx context.Context, assetType string) ([]schemas.HoldingResponse, error) {
	return c.HoldingService.GetHoldingsByAssetType(ctx, assetType)
}

// CreateHolding persists the holding and backfills price history for
// its symbol when none is stored yet. A failing backfill is logged and
// never blocks the create.
func (c *Controller) CreateHolding(ctx context.Context, req schemas.CreateHoldingRequest) (*schemas.HoldingResponse, error) {
	created, err := c.HoldingService.CreateHolding(ctx, req)
	if err != nil {
		return nil, err
	}

	stored, err := c.HistoricalPriceService.GetHistoricalPrices(ctx, created.Symbol)
	if err == nil && len(stored) == 0 {
		if _, err := c.HistoricalPriceService.FetchAndStoreHistoricalData(ctx, created.Symbol, created.AssetType); err != nil {
			utils.LoggerFromContext(ctx).Warnf("Error backfilling history for %s: %v", created.Symbol, err)
		}
	}
	return created, nil
}

func (c *Controller) UpdateHolding(ctx context.Context, id uuid.UUID, req schemas.UpdateHoldingRequest) (*schemas.HoldingResponse, error) {
	return c.HoldingService.UpdateHolding(ctx, id, req)
}

func (c *Controller) DeleteHolding(ctx context.Context, id uuid.UUID) error {
	return c.HoldingService.DeleteHolding(ctx, id)
}
