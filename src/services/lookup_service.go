package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"portfolio-server/src/clients/mfapi"
	"portfolio-server/src/clients/yahoofinance"
	"portfolio-server/src/schemas"
	"portfolio-server/src/utils"
)

const (
	maxStockMatches      = 15
	maxMutualFundMatches = 20
)

type LookupServiceI interface {
	SearchStocks(ctx context.Context, keywords string) (*schemas.StockSearchResponse, error)
	GetStockDetails(ctx context.Context, symbol string) (*schemas.StockDetails, error)
	SearchMutualFunds(ctx context.Context, keywords string) (*schemas.MutualFundSearchResponse, error)
	GetMutualFundDetails(ctx context.Context, schemeCode string) (*schemas.MutualFundDetails, error)
}

// LookupService exposes symbol discovery over the upstream providers,
// for picking assets before adding a holding.
type LookupService struct {
	yahoo yahoofinance.YahooFinanceClientI
	mfapi mfapi.MFAPIClientI
}

func NewLookupService(yahoo yahoofinance.YahooFinanceClientI, mfapiClient mfapi.MFAPIClientI) *LookupService {
	return &LookupService{yahoo: yahoo, mfapi: mfapiClient}
}

// SearchStocks returns up to 15 symbol matches for the keywords.
func (s *LookupService) SearchStocks(ctx context.Context, keywords string) (*schemas.StockSearchResponse, error) {
	result, err := s.yahoo.Search(ctx, keywords)
	if err != nil {
		return nil, err
	}

	matches := make([]schemas.StockMatch, 0, len(result.Quotes))
	for _, q := range result.Quotes {
		if q.Symbol == "" {
			continue
		}
		name := q.LongName
		if name == "" {
			name = q.ShortName
		}
		matches = append(matches, schemas.StockMatch{
			Symbol:   q.Symbol,
			Name:     name,
			Exchange: q.Exchange,
			Currency: q.Currency,
		})
		if len(matches) == maxStockMatches {
			break
		}
	}
	return &schemas.StockSearchResponse{Matches: matches}, nil
}

// GetStockDetails returns the quote detail view for one symbol.
func (s *LookupService) GetStockDetails(ctx context.Context, symbol string) (*schemas.StockDetails, error) {
	quote, err := s.yahoo.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	tradingDay := ""
	if quote.RegularMarketTime > 0 {
		tradingDay = time.Unix(quote.RegularMarketTime, 0).UTC().Format(utils.ShortDashDateLayout)
	}

	return &schemas.StockDetails{
		Symbol:           quote.Symbol,
		Price:            formatQuoteValue(quote.RegularMarketPrice),
		Open:             formatQuoteValue(quote.RegularMarketOpen),
		High:             formatQuoteValue(quote.RegularMarketDayHigh),
		Low:              formatQuoteValue(quote.RegularMarketDayLow),
		Volume:           strconv.FormatInt(quote.RegularMarketVolume, 10),
		LatestTradingDay: tradingDay,
		PreviousClose:    formatQuoteValue(quote.RegularMarketPreviousClose),
		Change:           formatQuoteValue(quote.RegularMarketChange),
		ChangePercent:    formatQuoteValue(quote.RegularMarketChangePercent) + "%",
	}, nil
}

// SearchMutualFunds returns up to 20 scheme matches for the keywords.
func (s *LookupService) SearchMutualFunds(ctx context.Context, keywords string) (*schemas.MutualFundSearchResponse, error) {
	results, err := s.mfapi.Search(ctx, keywords)
	if err != nil {
		return nil, err
	}

	matches := make([]schemas.MutualFundMatch, 0, len(results))
	for _, r := range results {
		matches = append(matches, schemas.MutualFundMatch{
			SchemeCode: r.SchemeCode.String(),
			SchemeName: r.SchemeName,
		})
		if len(matches) == maxMutualFundMatches {
			break
		}
	}
	return &schemas.MutualFundSearchResponse{Results: matches}, nil
}

// GetMutualFundDetails returns scheme metadata with the latest NAV.
func (s *LookupService) GetMutualFundDetails(ctx context.Context, schemeCode string) (*schemas.MutualFundDetails, error) {
	scheme, err := s.mfapi.GetLatestScheme(ctx, schemeCode)
	if err != nil {
		return nil, err
	}
	if len(scheme.Data) == 0 {
		return nil, fmt.Errorf("no NAV data for scheme %s", schemeCode)
	}

	latest := scheme.Data[0]
	return &schemas.MutualFundDetails{
		SchemeCode:     scheme.Meta.SchemeCode.String(),
		SchemeName:     scheme.Meta.SchemeName,
		FundHouse:      scheme.Meta.FundHouse,
		SchemeType:     scheme.Meta.SchemeType,
		SchemeCategory: scheme.Meta.SchemeCategory,
		LatestNAV:      latest.NAV,
		NAVDate:        latest.Date,
	}, nil
}

func formatQuoteValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
