package schemas

// StockMatch is one Yahoo search result.
type StockMatch struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exch"`
	Currency string `json:"currency"`
}

type StockSearchResponse struct {
	Matches []StockMatch `json:"matches"`
}

// StockDetails is the quote detail view for a single symbol. Fields are
// passed through as strings the way the upstream API reports them.
type StockDetails struct {
	Symbol           string `json:"symbol"`
	Price            string `json:"price"`
	Open             string `json:"open"`
	High             string `json:"high"`
	Low              string `json:"low"`
	Volume           string `json:"volume"`
	LatestTradingDay string `json:"latestTradingDay"`
	PreviousClose    string `json:"previousClose"`
	Change           string `json:"change"`
	ChangePercent    string `json:"changePercent"`
}

// MutualFundMatch is one MFAPI search result.
type MutualFundMatch struct {
	SchemeCode string `json:"schemeCode"`
	SchemeName string `json:"schemeName"`
}

type MutualFundSearchResponse struct {
	Results []MutualFundMatch `json:"results"`
}

// MutualFundDetails combines scheme metadata with the latest NAV.
type MutualFundDetails struct {
	SchemeCode     string `json:"schemeCode"`
	SchemeName     string `json:"schemeName"`
	FundHouse      string `json:"fundHouse"`
	SchemeType     string `json:"schemeType"`
	SchemeCategory string `json:"schemeCategory"`
	LatestNAV      string `json:"latestNAV"`
	NAVDate        string `json:"navDate"`
}
