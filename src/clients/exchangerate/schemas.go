package exchangerate

// LatestRatesResponse is the shape of the /v4/latest/{base} endpoint.
type LatestRatesResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}
