package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"portfolio-server/src/clients/mfapi"
	"portfolio-server/src/clients/yahoofinance"
	"portfolio-server/src/models"
	"portfolio-server/src/repositories"
	"portfolio-server/src/schemas"
	"portfolio-server/src/utils"
)

// historyWindowDays bounds how much history is fetched and kept per
// symbol on each refresh.
const historyWindowDays = 30

type HistoricalPriceServiceI interface {
	GetHistoricalPrices(ctx context.Context, symbol string) ([]schemas.HistoricalPriceResponse, error)
	FetchAndStoreHistoricalData(ctx context.Context, symbol, assetType string) (int, error)
	RefreshAll(ctx context.Context) error
}

// HistoricalPriceService fetches daily price history from the upstream
// providers and persists it for trend display.
type HistoricalPriceService struct {
	prices   repositories.HistoricalPriceRepository
	holdings repositories.HoldingRepository
	yahoo    yahoofinance.YahooFinanceClientI
	mfapi    mfapi.MFAPIClientI
}

func NewHistoricalPriceService(
	prices repositories.HistoricalPriceRepository,
	holdings repositories.HoldingRepository,
	yahoo yahoofinance.YahooFinanceClientI,
	mfapiClient mfapi.MFAPIClientI,
) *HistoricalPriceService {
	return &HistoricalPriceService{prices: prices, holdings: holdings, yahoo: yahoo, mfapi: mfapiClient}
}

// GetHistoricalPrices returns the stored history for a symbol, oldest
// first.
func (s *HistoricalPriceService) GetHistoricalPrices(ctx context.Context, symbol string) ([]schemas.HistoricalPriceResponse, error) {
	prices, err := s.prices.GetBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}

	responses := make([]schemas.HistoricalPriceResponse, 0, len(prices))
	for _, p := range prices {
		responses = append(responses, schemas.HistoricalPriceResponse{
			ID:        p.ID,
			Symbol:    p.Symbol,
			Price:     p.Price,
			PriceDate: schemas.NewDate(p.PriceDate),
		})
	}
	return responses, nil
}

// FetchAndStoreHistoricalData pulls the recent daily history for a
// symbol and upserts it. An empty or unrecognized asset type falls back
// to trying the stock provider first and the mutual fund provider
// second. Returns the number of stored points.
func (s *HistoricalPriceService) FetchAndStoreHistoricalData(ctx context.Context, symbol, assetType string) (int, error) {
	normalized := strings.ToLower(strings.TrimSpace(assetType))

	var (
		points []models.HistoricalPrice
		err    error
	)
	switch {
	case strings.Contains(normalized, "stock"):
		points, err = s.fetchStockHistory(ctx, symbol)
	case strings.Contains(normalized, "mutual"), strings.Contains(normalized, "fund"), normalized == "mf":
		points, err = s.fetchMutualFundHistory(ctx, symbol)
	default:
		points, err = s.fetchStockHistory(ctx, symbol)
		if err != nil || len(points) == 0 {
			points, err = s.fetchMutualFundHistory(ctx, symbol)
		}
	}
	if err != nil {
		return 0, err
	}
	if len(points) == 0 {
		return 0, fmt.Errorf("no historical data for symbol %s", symbol)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].PriceDate.Before(points[j].PriceDate) })
	if len(points) > historyWindowDays {
		points = points[len(points)-historyWindowDays:]
	}

	if err := s.prices.SaveAll(ctx, points); err != nil {
		return 0, err
	}
	return len(points), nil
}

// RefreshAll refetches history for the union of held symbols and
// symbols already present in the store, so history keeps accruing for
// symbols whose holding was sold off. One failing symbol does not stop
// the others; the first error is reported after the sweep completes.
func (s *HistoricalPriceService) RefreshAll(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)

	holdings, err := s.holdings.GetAll(ctx)
	if err != nil {
		return err
	}
	stored, err := s.prices.GetDistinctSymbols(ctx)
	if err != nil {
		return err
	}

	type target struct {
		symbol    string
		assetType string
	}
	targets := make([]target, 0, len(holdings)+len(stored))
	seen := make(map[string]bool, len(holdings)+len(stored))
	for _, h := range holdings {
		if seen[h.Symbol] {
			continue
		}
		seen[h.Symbol] = true
		targets = append(targets, target{symbol: h.Symbol, assetType: h.AssetType})
	}
	// Stored-only symbols have no holding to name their type; the
	// resolver chain figures it out.
	for _, symbol := range stored {
		if seen[symbol] {
			continue
		}
		seen[symbol] = true
		targets = append(targets, target{symbol: symbol})
	}

	var firstErr error
	for _, tgt := range targets {
		count, err := s.FetchAndStoreHistoricalData(ctx, tgt.symbol, tgt.assetType)
		if err != nil {
			logger.Warnf("Error refreshing history for %s: %v", tgt.symbol, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		logger.Infof("Stored %d historical prices for %s", count, tgt.symbol)
	}
	return firstErr
}

func (s *HistoricalPriceService) fetchStockHistory(ctx context.Context, symbol string) ([]models.HistoricalPrice, error) {
	data, err := s.yahoo.GetHistoricalData(ctx, symbol)
	if err != nil {
		return nil, err
	}

	points := make([]models.HistoricalPrice, 0, len(data))
	for _, d := range data {
		points = append(points, models.HistoricalPrice{
			Symbol:    symbol,
			Price:     d.Price,
			PriceDate: d.Date,
		})
	}
	return points, nil
}

func (s *HistoricalPriceService) fetchMutualFundHistory(ctx context.Context, symbol string) ([]models.HistoricalPrice, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -historyWindowDays)

	scheme, err := s.mfapi.GetScheme(ctx, symbol,
		start.Format(utils.ShortDashDateLayout), end.Format(utils.ShortDashDateLayout))
	if err != nil {
		return nil, err
	}
	// Some schemes ignore the date-bounded form; refetch the full
	// series and window it locally.
	if len(scheme.Data) == 0 {
		scheme, err = s.mfapi.GetScheme(ctx, symbol, "", "")
		if err != nil {
			return nil, err
		}
	}

	points := make([]models.HistoricalPrice, 0, len(scheme.Data))
	for _, nav := range scheme.Data {
		date, err := time.Parse(utils.MFAPIDateLayout, nav.Date)
		if err != nil {
			continue
		}
		price, err := mfapi.ParseNAV(nav.NAV)
		if err != nil {
			continue
		}
		points = append(points, models.HistoricalPrice{
			Symbol:    symbol,
			Price:     price,
			PriceDate: date,
		})
	}
	return points, nil
}
