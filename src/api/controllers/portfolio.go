package controllers

import (
	"context"

	"portfolio-server/src/schemas"
)

type PortfolioControllerI interface {
	GetPortfolioSummary(ctx context.Context) (*schemas.PortfolioSummary, error)
	GetDiversification(ctx context.Context) (*schemas.DiversificationSuggestion, error)
	GetBestPerformer(ctx context.Context) (*schemas.HoldingResponse, error)
	GetWorstPerformer(ctx context.Context) (*schemas.HoldingResponse, error)
}

func (c *Controller) GetPortfolioSummary(ctx context.Context) (*schemas.PortfolioSummary, error) {
	enriched, rate, err := c.HoldingService.EnrichAll(ctx)
	if err != nil {
		return nil, err
	}
	summary := c.PortfolioService.Summarize(enriched, rate)
	return &summary, nil
}

// GetDiversification enriches the holdings once and feeds the same
// slice to both the aggregator and the advisor.
func (c *Controller) GetDiversification(ctx context.Context) (*schemas.DiversificationSuggestion, error) {
	enriched, rate, err := c.HoldingService.EnrichAll(ctx)
	if err != nil {
		return nil, err
	}
	summary := c.PortfolioService.Summarize(enriched, rate)
	suggestion := c.DiversificationService.Advise(enriched, summary)
	return &suggestion, nil
}

// GetBestPerformer returns nil without error for an empty portfolio.
func (c *Controller) GetBestPerformer(ctx context.Context) (*schemas.HoldingResponse, error) {
	enriched, _, err := c.HoldingService.EnrichAll(ctx)
	if err != nil {
		return nil, err
	}
	return c.PortfolioService.BestPerformer(enriched), nil
}

func (c *Controller) GetWorstPerformer(ctx context.Context) (*schemas.HoldingResponse, error) {
	enriched, _, err := c.HoldingService.EnrichAll(ctx)
	if err != nil {
		return nil, err
	}
	return c.PortfolioService.WorstPerformer(enriched), nil
}
