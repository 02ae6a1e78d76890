package exchangerate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-server/src/config"

	"github.com/shopspring/decimal"
)

func newTestClient(serverURL string) *ExchangeRateClient {
	cfg := &config.Config{}
	cfg.ExternalClients.ExchangeRate.BaseURL = serverURL
	return NewClient(cfg)
}

func TestGetUsdToInrRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v4/latest/USD" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"base":"USD","rates":{"INR":83.12,"EUR":0.92}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	rate, err := client.GetUsdToInrRate(context.Background())
	if err != nil {
		t.Fatalf("GetUsdToInrRate() error: %v", err)
	}
	if !rate.Equal(decimal.NewFromFloat(83.12)) {
		t.Errorf("rate = %s, expected 83.12", rate)
	}
}

func TestGetUsdToInrRateMissingINR(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"base":"USD","rates":{"EUR":0.92}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.GetUsdToInrRate(context.Background()); err == nil {
		t.Error("expected error when INR rate is absent")
	}
}
