package yahoofinance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"time"

	"portfolio-server/src/config"
	"portfolio-server/src/utils/requests"

	"github.com/shopspring/decimal"
)

// HistoricalPoint is one daily close returned by the chart endpoint.
type HistoricalPoint struct {
	Symbol string
	Price  decimal.Decimal
	Date   time.Time
}

type YahooFinanceClientI interface {
	GetCurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
	GetHistoricalData(ctx context.Context, symbol string) ([]HistoricalPoint, error)
	Search(ctx context.Context, keywords string) (*SearchResponse, error)
	GetQuote(ctx context.Context, symbol string) (*QuoteResult, error)
}

type YahooFinanceClient struct {
	API           *requests.ExternalAPIService
	ChartBaseURL  string
	QuoteBaseURL  string
	SearchBaseURL string
}

// NewClient creates a new instance of YahooFinanceClient
func NewClient(cfg *config.Config) *YahooFinanceClient {
	return &YahooFinanceClient{
		API:           requests.NewExternalAPIService(),
		ChartBaseURL:  cfg.ExternalClients.YahooFinance.ChartBaseURL,
		QuoteBaseURL:  cfg.ExternalClients.YahooFinance.QuoteBaseURL,
		SearchBaseURL: cfg.ExternalClients.YahooFinance.SearchBaseURL,
	}
}

// GetCurrentPrice fetches the latest regular market price for a symbol.
func (c *YahooFinanceClient) GetCurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s", c.ChartBaseURL, url.PathEscape(symbol))

	params := url.Values{}
	params.Add("interval", "1d")

	chartResponse, err := c.getChart(ctx, endpoint, params)
	if err != nil {
		return decimal.Zero, err
	}
	if len(chartResponse.Chart.Result) == 0 {
		return decimal.Zero, fmt.Errorf("no chart result for symbol %s", symbol)
	}

	meta := chartResponse.Chart.Result[0].Meta
	if meta.RegularMarketPrice <= 0 {
		return decimal.Zero, fmt.Errorf("no market price for symbol %s", symbol)
	}
	return decimal.NewFromFloat(meta.RegularMarketPrice), nil
}

// GetHistoricalData fetches one month of daily closes for a symbol,
// sorted by date ascending. Null closes (market holidays) are skipped.
func (c *YahooFinanceClient) GetHistoricalData(ctx context.Context, symbol string) ([]HistoricalPoint, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s", c.ChartBaseURL, url.PathEscape(symbol))

	params := url.Values{}
	params.Add("range", "1mo")
	params.Add("interval", "1d")

	chartResponse, err := c.getChart(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	if len(chartResponse.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart result for symbol %s", symbol)
	}

	result := chartResponse.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote indicators for symbol %s", symbol)
	}
	closes := result.Indicators.Quote[0].Close

	points := make([]HistoricalPoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		points = append(points, HistoricalPoint{
			Symbol: symbol,
			Price:  decimal.NewFromFloat(*closes[i]),
			Date:   time.Unix(ts, 0).UTC().Truncate(24 * time.Hour),
		})
	}
	return points, nil
}

// Search looks up symbols matching the given keywords.
func (c *YahooFinanceClient) Search(ctx context.Context, keywords string) (*SearchResponse, error) {
	endpoint := fmt.Sprintf("%s/v1/finance/search", c.SearchBaseURL)

	params := url.Values{}
	params.Add("q", keywords)
	params.Add("quotesCount", "15")
	params.Add("newsCount", "0")

	resp, err := c.API.Get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var searchResponse SearchResponse
	err = json.Unmarshal(responseBody, &searchResponse)
	if err != nil {
		return nil, err
	}
	return &searchResponse, nil
}

// GetQuote fetches the detailed quote view for a single symbol.
func (c *YahooFinanceClient) GetQuote(ctx context.Context, symbol string) (*QuoteResult, error) {
	endpoint := fmt.Sprintf("%s/v7/finance/quote", c.QuoteBaseURL)

	params := url.Values{}
	params.Add("symbols", symbol)

	resp, err := c.API.Get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var quoteResponse QuoteResponse
	err = json.Unmarshal(responseBody, &quoteResponse)
	if err != nil {
		return nil, err
	}
	if len(quoteResponse.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("no data found for symbol: %s", symbol)
	}
	return &quoteResponse.QuoteResponse.Result[0], nil
}

func (c *YahooFinanceClient) getChart(ctx context.Context, endpoint string, params url.Values) (*ChartResponse, error) {
	resp, err := c.API.Get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var chartResponse ChartResponse
	err = json.Unmarshal(responseBody, &chartResponse)
	if err != nil {
		return nil, err
	}
	return &chartResponse, nil
}
