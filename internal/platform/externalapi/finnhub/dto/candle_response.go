// Package dto defines data transfer objects for Finnhub API responses.
package dto

// CandleResponse represents the parallel-array JSON response from the
// Finnhub /stock/candle endpoint. Status is "ok" when data is present and
// "no_data" when the symbol has no bars in the requested window.
type CandleResponse struct {
	Status    string    `json:"s"`
	Open      []float64 `json:"o"`
	High      []float64 `json:"h"`
	Low       []float64 `json:"l"`
	Close     []float64 `json:"c"`
	Volume    []int64   `json:"v"`
	Timestamp []int64   `json:"t"`
}
