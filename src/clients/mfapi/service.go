package mfapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"portfolio-server/src/config"
	"portfolio-server/src/utils/requests"

	"github.com/shopspring/decimal"
)

type MFAPIClientI interface {
	GetLatestNAV(ctx context.Context, schemeCode string) (decimal.Decimal, error)
	GetScheme(ctx context.Context, schemeCode string, startDate, endDate string) (*SchemeResponse, error)
	GetLatestScheme(ctx context.Context, schemeCode string) (*SchemeResponse, error)
	Search(ctx context.Context, keywords string) ([]SearchResult, error)
}

type MFAPIClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
}

// NewClient creates a new instance of MFAPIClient
func NewClient(cfg *config.Config) *MFAPIClient {
	return &MFAPIClient{
		API:     requests.NewExternalAPIService(),
		BaseURL: cfg.ExternalClients.MFAPI.BaseURL,
	}
}

// GetLatestNAV returns the most recent NAV for a scheme code.
func (c *MFAPIClient) GetLatestNAV(ctx context.Context, schemeCode string) (decimal.Decimal, error) {
	scheme, err := c.GetScheme(ctx, schemeCode, "", "")
	if err != nil {
		return decimal.Zero, err
	}
	if len(scheme.Data) == 0 {
		return decimal.Zero, fmt.Errorf("no data from MFAPI for: %s", schemeCode)
	}
	return ParseNAV(scheme.Data[0].NAV)
}

// GetScheme fetches NAV history for a scheme, optionally bounded by a
// date range (yyyy-MM-dd).
func (c *MFAPIClient) GetScheme(ctx context.Context, schemeCode string, startDate, endDate string) (*SchemeResponse, error) {
	endpoint := fmt.Sprintf("%s/mf/%s", c.BaseURL, url.PathEscape(schemeCode))

	var params url.Values
	if startDate != "" && endDate != "" {
		params = url.Values{}
		params.Add("startDate", startDate)
		params.Add("endDate", endDate)
	}

	return c.getScheme(ctx, endpoint, params)
}

// GetLatestScheme fetches scheme metadata together with only the most
// recent NAV point.
func (c *MFAPIClient) GetLatestScheme(ctx context.Context, schemeCode string) (*SchemeResponse, error) {
	endpoint := fmt.Sprintf("%s/mf/%s/latest", c.BaseURL, url.PathEscape(schemeCode))
	return c.getScheme(ctx, endpoint, nil)
}

// Search looks up mutual fund schemes matching the given keywords.
func (c *MFAPIClient) Search(ctx context.Context, keywords string) ([]SearchResult, error) {
	endpoint := fmt.Sprintf("%s/mf/search", c.BaseURL)

	params := url.Values{}
	params.Add("q", keywords)

	resp, err := c.API.Get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	err = json.Unmarshal(responseBody, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (c *MFAPIClient) getScheme(ctx context.Context, endpoint string, params url.Values) (*SchemeResponse, error) {
	resp, err := c.API.Get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var schemeResponse SchemeResponse
	err = json.Unmarshal(responseBody, &schemeResponse)
	if err != nil {
		return nil, err
	}
	return &schemeResponse, nil
}

// ParseNAV cleans an MFAPI NAV string (commas stripped, "NA" rejected)
// and parses it as a decimal.
func ParseNAV(nav string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(nav, ",", ""))
	if cleaned == "" || strings.EqualFold(cleaned, "NA") {
		return decimal.Zero, fmt.Errorf("non-numeric NAV %q", nav)
	}
	return decimal.NewFromString(cleaned)
}
