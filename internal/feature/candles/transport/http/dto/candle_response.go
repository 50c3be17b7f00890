// Package dto defines the HTTP response shapes for the candles feature.
package dto

import (
	"math"

	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
)

// CandleResponse is one daily bar in API form.
type CandleResponse struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// FromCandles converts a series to response form, rounding prices to two
// decimal places at the API boundary.
func FromCandles(series []entity.Candle) []CandleResponse {
	out := make([]CandleResponse, 0, len(series))
	for _, c := range series {
		out = append(out, CandleResponse{
			Date:   c.Date.UTC().Format("2006-01-02"),
			Open:   Round2(c.Open),
			High:   Round2(c.High),
			Low:    Round2(c.Low),
			Close:  Round2(c.Close),
			Volume: c.Volume,
		})
	}
	return out
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
