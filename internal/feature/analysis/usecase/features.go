package usecase

import (
	"github.com/Minji827/invest/internal/feature/analysis/domain"
	analysisentity "github.com/Minji827/invest/internal/feature/analysis/domain/entity"
	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
)

// FeatureCount is the width of the regressor feature vector.
const FeatureCount = 8

// MinFeatureBars is the shortest series the feature extractor accepts; the
// 60-bar moving average must be defined for the latest bar.
const MinFeatureBars = 60

// volatilityWindow is the trailing window of daily returns used for the
// volatility feature.
const volatilityWindow = 20

// Features builds the regressor input vector for the latest bar:
// [rsi, bollinger_position, bollinger_width, volatility, distance_from_ma20,
// distance_from_ma60, volume_ratio, atr]. Cells the frame could not define
// fall back to neutral values so the vector is always fully populated.
func Features(series []entity.Candle, frame analysisentity.Frame) ([FeatureCount]float64, error) {
	var out [FeatureCount]float64
	if len(series) < MinFeatureBars || len(frame) != len(series) {
		return out, domain.ErrInsufficientHistory
	}

	last := series[len(series)-1]
	row, ok := frame.Last()
	if !ok {
		return out, domain.ErrInsufficientHistory
	}

	rsi := 50.0
	if analysisentity.Defined(row.RSI) {
		rsi = row.RSI
	}

	bbPosition := 0.5
	bbWidth := 0.0
	if analysisentity.Defined(row.BBUpper) && analysisentity.Defined(row.BBLower) {
		if band := row.BBUpper - row.BBLower; band > 0 {
			bbPosition = (last.Close - row.BBLower) / band
		}
		if analysisentity.Defined(row.BBMiddle) && row.BBMiddle != 0 {
			bbWidth = (row.BBUpper - row.BBLower) / row.BBMiddle
		}
	}

	distMA20 := 0.0
	if analysisentity.Defined(row.MA20) && row.MA20 != 0 {
		distMA20 = (last.Close - row.MA20) / row.MA20
	}
	distMA60 := 0.0
	if analysisentity.Defined(row.MA60) && row.MA60 != 0 {
		distMA60 = (last.Close - row.MA60) / row.MA60
	}

	atr := 0.0
	if analysisentity.Defined(row.ATR) {
		atr = row.ATR
	}

	out[0] = rsi
	out[1] = bbPosition
	out[2] = bbWidth
	out[3] = Volatility(series)
	out[4] = distMA20
	out[5] = distMA60
	out[6] = volumeRatio(series, volatilityWindow)
	out[7] = atr
	return out, nil
}

// Volatility is the sample standard deviation of the last 20 daily returns.
func Volatility(series []entity.Candle) float64 {
	closes := entity.Closes(series)
	if len(closes) < 2 {
		return 0
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, closes[i]/closes[i-1]-1)
	}
	if len(returns) > volatilityWindow {
		returns = returns[len(returns)-volatilityWindow:]
	}
	return sampleStddev(returns)
}

// volumeRatio compares the latest volume against its trailing mean.
func volumeRatio(series []entity.Candle, window int) float64 {
	if len(series) == 0 {
		return 1
	}
	start := len(series) - window
	if start < 0 {
		start = 0
	}
	var sum float64
	for _, c := range series[start:] {
		sum += float64(c.Volume)
	}
	mean := sum / float64(len(series)-start)
	if mean == 0 {
		return 1
	}
	return float64(series[len(series)-1].Volume) / mean
}
