package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"portfolio-server/src/models"
	"portfolio-server/src/repositories"
	"portfolio-server/src/schemas"
	"portfolio-server/src/utils"
)

type HoldingServiceI interface {
	GetAllHoldings(ctx context.Context) ([]schemas.HoldingResponse, error)
	GetHolding(ctx context.Context, id uuid.UUID) (*schemas.HoldingResponse, error)
	GetHoldingsByAssetType(ctx context.Context, assetType string) ([]schemas.HoldingResponse, error)
	CreateHolding(ctx context.Context, req schemas.CreateHoldingRequest) (*schemas.HoldingResponse, error)
	UpdateHolding(ctx context.Context, id uuid.UUID, req schemas.UpdateHoldingRequest) (*schemas.HoldingResponse, error)
	DeleteHolding(ctx context.Context, id uuid.UUID) error

	// EnrichAll returns every holding valued at a single exchange rate,
	// together with that rate, so aggregation over the result stays
	// internally consistent.
	EnrichAll(ctx context.Context) ([]schemas.HoldingResponse, decimal.Decimal, error)
}

// HoldingService owns the holding lifecycle and the read-time valuation
// of stored holdings.
type HoldingService struct {
	repo      repositories.HoldingRepository
	valuation ValuationServiceI
	currency  CurrencyServiceI
}

func NewHoldingService(repo repositories.HoldingRepository, valuation ValuationServiceI, currency CurrencyServiceI) *HoldingService {
	return &HoldingService{repo: repo, valuation: valuation, currency: currency}
}

func (s *HoldingService) GetAllHoldings(ctx context.Context) ([]schemas.HoldingResponse, error) {
	enriched, _, err := s.EnrichAll(ctx)
	return enriched, err
}

func (s *HoldingService) EnrichAll(ctx context.Context) ([]schemas.HoldingResponse, decimal.Decimal, error) {
	holdings, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}

	// One rate for the whole batch; fetching per holding could mix
	// rates within a single response.
	rate := s.currency.GetUsdToInrRate(ctx)

	enriched := make([]schemas.HoldingResponse, 0, len(holdings))
	for i := range holdings {
		enriched = append(enriched, s.valuation.Enrich(ctx, &holdings[i], rate))
	}
	return enriched, rate, nil
}

func (s *HoldingService) GetHolding(ctx context.Context, id uuid.UUID) (*schemas.HoldingResponse, error) {
	holding, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rate := s.currency.GetUsdToInrRate(ctx)
	response := s.valuation.Enrich(ctx, holding, rate)
	return &response, nil
}

func (s *HoldingService) GetHoldingsByAssetType(ctx context.Context, assetType string) ([]schemas.HoldingResponse, error) {
	holdings, err := s.repo.GetByAssetType(ctx, normalizeAssetType(assetType))
	if err != nil {
		return nil, err
	}

	rate := s.currency.GetUsdToInrRate(ctx)
	enriched := make([]schemas.HoldingResponse, 0, len(holdings))
	for i := range holdings {
		enriched = append(enriched, s.valuation.Enrich(ctx, &holdings[i], rate))
	}
	return enriched, nil
}

func (s *HoldingService) CreateHolding(ctx context.Context, req schemas.CreateHoldingRequest) (*schemas.HoldingResponse, error) {
	holding := models.Holding{
		AssetType:     normalizeAssetType(req.AssetType),
		Symbol:        strings.TrimSpace(req.Symbol),
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  req.PurchaseDate.Time,
		Category:      strings.TrimSpace(req.Category),
	}
	if err := validateHolding(&holding); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &holding); err != nil {
		return nil, err
	}

	rate := s.currency.GetUsdToInrRate(ctx)
	response := s.valuation.Enrich(ctx, &holding, rate)
	return &response, nil
}

func (s *HoldingService) UpdateHolding(ctx context.Context, id uuid.UUID, req schemas.UpdateHoldingRequest) (*schemas.HoldingResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.AssetType = normalizeAssetType(req.AssetType)
	existing.Symbol = strings.TrimSpace(req.Symbol)
	existing.Quantity = req.Quantity
	existing.PurchasePrice = req.PurchasePrice
	existing.PurchaseDate = req.PurchaseDate.Time
	existing.Category = strings.TrimSpace(req.Category)
	if err := validateHolding(existing); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	rate := s.currency.GetUsdToInrRate(ctx)
	response := s.valuation.Enrich(ctx, existing, rate)
	return &response, nil
}

func (s *HoldingService) DeleteHolding(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func normalizeAssetType(assetType string) string {
	return strings.ToUpper(strings.TrimSpace(assetType))
}

func validateHolding(h *models.Holding) error {
	switch {
	case h.AssetType != models.AssetTypeStock && h.AssetType != models.AssetTypeMutualFund:
		return utils.UnprocessableEntity("assetType must be STOCK or MUTUAL_FUND")
	case h.Symbol == "":
		return utils.UnprocessableEntity("symbol is required")
	case !h.Quantity.IsPositive():
		return utils.UnprocessableEntity("quantity must be greater than zero")
	case h.PurchasePrice.IsNegative():
		return utils.UnprocessableEntity("purchasePrice must not be negative")
	case h.PurchaseDate.IsZero():
		return utils.UnprocessableEntity("purchaseDate is required")
	}
	return nil
}
