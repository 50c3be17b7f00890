// Package entity defines the domain models for the candles feature.
package entity

import "time"

// Candle represents one calendar day of OHLCV (Open, High, Low, Close, Volume)
// data for a ticker symbol in the canonical schema. Date carries no time
// component: it is normalized to midnight UTC.
//
// Bars are stored exactly as the upstream provider reported them; a bar that
// violates low <= min(open, close) <= max(open, close) <= high is passed
// through unchanged because providers are the source of record.
type Candle struct {
	Symbol string    // Ticker symbol (e.g., "AAPL")
	Date   time.Time // Calendar day at 00:00:00 UTC
	Open   float64   // Opening price
	High   float64   // Highest price of the day
	Low    float64   // Lowest price of the day
	Close  float64   // Closing price
	Volume int64     // Trading volume
}

// Day truncates t to its calendar day at midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Closes extracts the close-price column from a series.
func Closes(series []Candle) []float64 {
	out := make([]float64, len(series))
	for i, c := range series {
		out[i] = c.Close
	}
	return out
}

// Highs extracts the high-price column from a series.
func Highs(series []Candle) []float64 {
	out := make([]float64, len(series))
	for i, c := range series {
		out[i] = c.High
	}
	return out
}

// Lows extracts the low-price column from a series.
func Lows(series []Candle) []float64 {
	out := make([]float64, len(series))
	for i, c := range series {
		out[i] = c.Low
	}
	return out
}
