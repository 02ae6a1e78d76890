package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"portfolio-server/src/config"
	"portfolio-server/src/utils/requests"

	"github.com/shopspring/decimal"
)

type ExchangeRateClientI interface {
	GetUsdToInrRate(ctx context.Context) (decimal.Decimal, error)
}

type ExchangeRateClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
}

// NewClient creates a new instance of ExchangeRateClient
func NewClient(cfg *config.Config) *ExchangeRateClient {
	return &ExchangeRateClient{
		API:     requests.NewExternalAPIService(),
		BaseURL: cfg.ExternalClients.ExchangeRate.BaseURL,
	}
}

// GetUsdToInrRate fetches the live USD→INR rate.
func (c *ExchangeRateClient) GetUsdToInrRate(ctx context.Context) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/v4/latest/USD", c.BaseURL)

	resp, err := c.API.Get(ctx, endpoint, nil)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, err
	}

	var ratesResponse LatestRatesResponse
	err = json.Unmarshal(responseBody, &ratesResponse)
	if err != nil {
		return decimal.Zero, err
	}

	rate, ok := ratesResponse.Rates["INR"]
	if !ok || rate <= 0 {
		return decimal.Zero, fmt.Errorf("no INR rate in response")
	}
	return decimal.NewFromFloat(rate), nil
}
