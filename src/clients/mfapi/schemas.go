package mfapi

import "encoding/json"

// SchemeResponse is the shape of the /mf/{schemeCode} endpoint. The
// data array is ordered newest first.
type SchemeResponse struct {
	Meta SchemeMeta `json:"meta"`
	Data []NAVPoint `json:"data"`
}

type SchemeMeta struct {
	SchemeCode     json.Number `json:"scheme_code"`
	SchemeName     string      `json:"scheme_name"`
	FundHouse      string      `json:"fund_house"`
	SchemeType     string      `json:"scheme_type"`
	SchemeCategory string      `json:"scheme_category"`
}

// NAVPoint carries a NAV value and its date in dd-MM-yyyy form, both as
// strings the way MFAPI reports them.
type NAVPoint struct {
	Date string `json:"date"`
	NAV  string `json:"nav"`
}

// SearchResult is one entry of the /mf/search endpoint.
type SearchResult struct {
	SchemeCode json.Number `json:"schemeCode"`
	SchemeName string      `json:"schemeName"`
}
