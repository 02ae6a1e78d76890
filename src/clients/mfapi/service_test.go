package mfapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-server/src/config"
)

func newTestClient(serverURL string) *MFAPIClient {
	cfg := &config.Config{}
	cfg.ExternalClients.MFAPI.BaseURL = serverURL
	return NewClient(cfg)
}

func TestGetLatestNAV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mf/120503" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{
			"meta":{"scheme_code":120503,"scheme_name":"Axis Bluechip Fund","fund_house":"Axis Mutual Fund"},
			"data":[{"date":"26-08-2026","nav":"85.50"},{"date":"25-08-2026","nav":"85.10"}]
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	nav, err := client.GetLatestNAV(context.Background(), "120503")
	if err != nil {
		t.Fatalf("GetLatestNAV() error: %v", err)
	}
	if nav.String() != "85.5" {
		t.Errorf("nav = %s, expected 85.5", nav)
	}
}

func TestGetLatestNAVNoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"meta":{"scheme_code":999999},"data":[]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.GetLatestNAV(context.Background(), "999999"); err == nil {
		t.Error("expected error for scheme with no data")
	}
}

func TestGetSchemeSendsDateRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("startDate"); got != "2026-07-27" {
			t.Errorf("startDate = %s, expected 2026-07-27", got)
		}
		if got := r.URL.Query().Get("endDate"); got != "2026-08-26" {
			t.Errorf("endDate = %s, expected 2026-08-26", got)
		}
		fmt.Fprint(w, `{"meta":{"scheme_code":120503},"data":[{"date":"26-08-2026","nav":"85.50"}]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	scheme, err := client.GetScheme(context.Background(), "120503", "2026-07-27", "2026-08-26")
	if err != nil {
		t.Fatalf("GetScheme() error: %v", err)
	}
	if len(scheme.Data) != 1 {
		t.Errorf("got %d NAV points, expected 1", len(scheme.Data))
	}
}

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mf/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "axis" {
			t.Errorf("q = %s, expected axis", got)
		}
		fmt.Fprint(w, `[{"schemeCode":120503,"schemeName":"Axis Bluechip Fund"}]`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	results, err := client.Search(context.Background(), "axis")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(results) != 1 || results[0].SchemeCode.String() != "120503" {
		t.Errorf("results = %+v, expected single 120503 match", results)
	}
}

func TestParseNAV(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"85.50", "85.5", false},
		{"1,234.56", "1234.56", false},
		{" 12.00 ", "12", false},
		{"NA", "", true},
		{"", "", true},
		{"abc", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNAV(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseNAV(%q) expected error, got %s", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNAV(%q) error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseNAV(%q) = %s, expected %s", tt.input, got, tt.want)
			}
		})
	}
}
