// Package usecase implements the derived-analytics engine: windowed
// indicators, support/resistance detection, and the buy-price
// recommendation synthesizer.
package usecase

import (
	"math"

	analysisentity "github.com/Minji827/invest/internal/feature/analysis/domain/entity"
	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
)

// Indicator window lengths.
const (
	rsiWindow       = 14
	macdFastSpan    = 12
	macdSlowSpan    = 26
	macdSignalSpan  = 9
	bollingerWindow = 20
	bollingerWidth  = 2.0
	atrWindow       = 14
)

// Compute derives the full indicator frame for a series. It is a pure
// function over backward-looking windows: row i only sees bars 0..i, and
// the first window-1 rows of each column are undefined.
func Compute(series []entity.Candle) analysisentity.Frame {
	n := len(series)
	if n == 0 {
		return nil
	}

	closes := entity.Closes(series)

	ma5 := sma(closes, 5)
	ma20 := sma(closes, 20)
	ma60 := sma(closes, 60)
	ma120 := sma(closes, 120)
	rsi := rollingRSI(closes, rsiWindow)
	macd, signal := macdLines(closes)
	bbMiddle, bbUpper, bbLower := bollinger(closes)
	atr := rollingATR(series, atrWindow)

	frame := make(analysisentity.Frame, n)
	for i := range frame {
		frame[i] = analysisentity.IndicatorRow{
			Date:       series[i].Date,
			MA5:        ma5[i],
			MA20:       ma20[i],
			MA60:       ma60[i],
			MA120:      ma120[i],
			RSI:        rsi[i],
			MACD:       macd[i],
			MACDSignal: signal[i],
			BBUpper:    bbUpper[i],
			BBMiddle:   bbMiddle[i],
			BBLower:    bbLower[i],
			ATR:        atr[i],
		}
	}
	return frame
}

// sma computes the trailing simple moving average; the first window-1
// entries are undefined.
func sma(values []float64, window int) []float64 {
	out := undefinedColumn(len(values))
	if window <= 0 || len(values) < window {
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// rollingRSI computes the RSI from a plain rolling mean of gains and losses
// over the trailing window deltas. When the average loss is zero the ratio
// rs is undefined and the cell stays undefined rather than pinning to 100.
func rollingRSI(closes []float64, window int) []float64 {
	n := len(closes)
	out := undefinedColumn(n)
	if n < window+1 {
		return out
	}

	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	var gainSum, lossSum float64
	for i := 1; i < n; i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > window {
			// The sliding subtraction can cancel a true zero sum into a tiny
			// negative, which would push RSI outside [0, 100].
			gainSum = math.Max(gainSum-gains[i-window], 0)
			lossSum = math.Max(lossSum-losses[i-window], 0)
		}
		if i < window {
			continue
		}
		avgGain := gainSum / float64(window)
		avgLoss := lossSum / float64(window)
		if avgLoss == 0 {
			continue
		}
		rs := avgGain / avgLoss
		out[i] = 100 - 100/(1+rs)
	}
	return out
}

// ema computes an exponential moving average seeded at the first value,
// with no bias-adjustment term.
func ema(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	alpha := 2.0 / (float64(span) + 1.0)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// macdLines returns the MACD line (EMA12 - EMA26) and its EMA9 signal line.
// Both are defined from the first row because the EMAs seed at row zero.
func macdLines(closes []float64) (macd, signal []float64) {
	fast := ema(closes, macdFastSpan)
	slow := ema(closes, macdSlowSpan)
	macd = make([]float64, len(closes))
	for i := range macd {
		macd[i] = fast[i] - slow[i]
	}
	signal = ema(macd, macdSignalSpan)
	return macd, signal
}

// bollinger computes the 20-bar middle band and the +/- 2 sigma envelope,
// using the sample standard deviation of the window.
func bollinger(closes []float64) (middle, upper, lower []float64) {
	n := len(closes)
	middle = sma(closes, bollingerWindow)
	upper = undefinedColumn(n)
	lower = undefinedColumn(n)
	for i := bollingerWindow - 1; i < n; i++ {
		sd := sampleStddev(closes[i-bollingerWindow+1 : i+1])
		upper[i] = middle[i] + bollingerWidth*sd
		lower[i] = middle[i] - bollingerWidth*sd
	}
	return middle, upper, lower
}

// rollingATR computes the rolling mean of the true range. True range needs
// the previous close, so the window fills one row later than for close-only
// columns and the first window rows are undefined.
func rollingATR(series []entity.Candle, window int) []float64 {
	n := len(series)
	out := undefinedColumn(n)
	if n < window+1 {
		return out
	}

	tr := make([]float64, n)
	for i := 1; i < n; i++ {
		prevClose := series[i-1].Close
		tr[i] = math.Max(series[i].High-series[i].Low,
			math.Max(math.Abs(series[i].High-prevClose), math.Abs(series[i].Low-prevClose)))
	}

	var sum float64
	for i := 1; i < n; i++ {
		sum += tr[i]
		if i > window {
			sum -= tr[i-window]
		}
		if i >= window {
			out[i] = sum / float64(window)
		}
	}
	return out
}

func undefinedColumn(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = analysisentity.Undefined()
	}
	return out
}

// sampleStddev is the n-1 normalized standard deviation.
func sampleStddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

// popStddev is the population (n normalized) standard deviation.
func popStddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)))
}
