package yahoofinance

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-server/src/config"

	"github.com/shopspring/decimal"
)

func newTestClient(serverURL string) *YahooFinanceClient {
	cfg := &config.Config{}
	cfg.ExternalClients.YahooFinance.ChartBaseURL = serverURL
	cfg.ExternalClients.YahooFinance.QuoteBaseURL = serverURL
	cfg.ExternalClients.YahooFinance.SearchBaseURL = serverURL
	return NewClient(cfg)
}

func TestGetCurrentPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/AAPL" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"chart":{"result":[{"meta":{"symbol":"AAPL","currency":"USD","regularMarketPrice":160.25}}]}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	price, err := client.GetCurrentPrice(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("GetCurrentPrice() error: %v", err)
	}
	if !price.Equal(decimal.NewFromFloat(160.25)) {
		t.Errorf("price = %s, expected 160.25", price)
	}
}

func TestGetCurrentPriceNoResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[],"error":null}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.GetCurrentPrice(context.Background(), "NOPE"); err == nil {
		t.Error("expected error for empty chart result")
	}
}

func TestGetHistoricalDataSkipsNullCloses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("range"); got != "1mo" {
			t.Errorf("range = %s, expected 1mo", got)
		}
		fmt.Fprint(w, `{"chart":{"result":[{
			"meta":{"symbol":"AAPL"},
			"timestamp":[1704067200,1704153600,1704240000],
			"indicators":{"quote":[{"close":[150.5,null,152.75]}]}
		}]}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	points, err := client.GetHistoricalData(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("GetHistoricalData() error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, expected 2 (null close skipped)", len(points))
	}
	if !points[0].Price.Equal(decimal.NewFromFloat(150.5)) {
		t.Errorf("first price = %s, expected 150.5", points[0].Price)
	}
	if !points[1].Date.After(points[0].Date) {
		t.Error("points are not date ascending")
	}
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("quotesCount"); got != "15" {
			t.Errorf("quotesCount = %s, expected 15", got)
		}
		fmt.Fprint(w, `{"quotes":[{"symbol":"AAPL","shortname":"Apple Inc.","exchange":"NMS","quoteType":"EQUITY"}]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.Search(context.Background(), "apple")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(result.Quotes) != 1 || result.Quotes[0].Symbol != "AAPL" {
		t.Errorf("quotes = %+v, expected single AAPL match", result.Quotes)
	}
}

func TestGetQuoteNoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteResponse":{"result":[],"error":null}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.GetQuote(context.Background(), "NOPE"); err == nil {
		t.Error("expected error for empty quote result")
	}
}
