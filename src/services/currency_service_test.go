package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGetUsdToInrRateFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name string
		rate decimal.Decimal
		err  error
		want string
	}{
		{"live rate", dec("83.25"), nil, "83.25"},
		{"client error", decimal.Zero, errors.New("boom"), "89"},
		{"non-positive rate", decimal.Zero, nil, "89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestCurrencyService(tt.rate, tt.err)
			got := svc.GetUsdToInrRate(context.Background())
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestConvertUsdToInrRoundsHalfUp(t *testing.T) {
	svc := newTestCurrencyService(decimal.Zero, nil)

	assert.Equal(t, "12.35", svc.ConvertUsdToInr(dec("1.2345"), dec("10")).String())
	assert.Equal(t, "0.13", svc.ConvertUsdToInr(dec("0.125"), dec("1")).String())
}

func TestConvertToInrByAssetType(t *testing.T) {
	svc := newTestCurrencyService(decimal.Zero, nil)
	rate := dec("89")

	assert.Equal(t, "8900", svc.ConvertToInr(dec("100"), "STOCK", rate).String())
	assert.Equal(t, "100", svc.ConvertToInr(dec("100"), "MUTUAL_FUND", rate).String())
}

func TestCurrencyCodeAndSymbol(t *testing.T) {
	svc := newTestCurrencyService(decimal.Zero, nil)

	tests := []struct {
		assetType  string
		wantCode   string
		wantSymbol string
	}{
		{"STOCK", "USD", "$"},
		{"MUTUAL_FUND", "INR", "₹"},
		{"BOND", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.assetType, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, svc.CurrencyCode(tt.assetType))
			assert.Equal(t, tt.wantSymbol, svc.CurrencySymbol(tt.assetType))
		})
	}
}
