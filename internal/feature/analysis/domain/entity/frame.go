// Package entity defines the derived-analytics domain models.
package entity

import (
	"math"
	"time"
)

// IndicatorRow carries the derived columns for one bar of a series. A cell
// whose trailing window has not filled yet is NaN; use Defined to test.
// Only the affected column is undefined, never the whole row.
type IndicatorRow struct {
	Date       time.Time
	MA5        float64
	MA20       float64
	MA60       float64
	MA120      float64
	RSI        float64
	MACD       float64
	MACDSignal float64
	BBUpper    float64
	BBMiddle   float64
	BBLower    float64
	ATR        float64
}

// Frame is the indicator columns for a whole series, row i matching bar i.
type Frame []IndicatorRow

// Last returns the final row and false when the frame is empty.
func (f Frame) Last() (IndicatorRow, bool) {
	if len(f) == 0 {
		return IndicatorRow{}, false
	}
	return f[len(f)-1], true
}

// Defined reports whether an indicator cell holds a computed value.
func Defined(v float64) bool {
	return !math.IsNaN(v)
}

// Undefined is the marker stored in cells with insufficient trailing history.
func Undefined() float64 {
	return math.NaN()
}
