// Package dto defines the HTTP response shapes for the analysis feature.
package dto

import (
	"math"

	analysisentity "github.com/Minji827/invest/internal/feature/analysis/domain/entity"
	candledto "github.com/Minji827/invest/internal/feature/candles/transport/http/dto"
)

// IndicatorRowResponse is one row of the indicator frame. Cells whose
// trailing window has not filled yet serialize as null.
type IndicatorRowResponse struct {
	Date       string   `json:"date"`
	MA5        *float64 `json:"ma5"`
	MA20       *float64 `json:"ma20"`
	MA60       *float64 `json:"ma60"`
	MA120      *float64 `json:"ma120"`
	RSI        *float64 `json:"rsi"`
	MACD       *float64 `json:"macd"`
	MACDSignal *float64 `json:"macd_signal"`
	BBUpper    *float64 `json:"bb_upper"`
	BBMiddle   *float64 `json:"bb_middle"`
	BBLower    *float64 `json:"bb_lower"`
	ATR        *float64 `json:"atr"`
}

// FromFrame converts an indicator frame to response form. Prices round to
// two decimal places; the MACD pair keeps four because its values sit close
// to zero.
func FromFrame(frame analysisentity.Frame) []IndicatorRowResponse {
	out := make([]IndicatorRowResponse, 0, len(frame))
	for _, row := range frame {
		out = append(out, IndicatorRowResponse{
			Date:       row.Date.UTC().Format("2006-01-02"),
			MA5:        num2(row.MA5),
			MA20:       num2(row.MA20),
			MA60:       num2(row.MA60),
			MA120:      num2(row.MA120),
			RSI:        num2(row.RSI),
			MACD:       num4(row.MACD),
			MACDSignal: num4(row.MACDSignal),
			BBUpper:    num2(row.BBUpper),
			BBMiddle:   num2(row.BBMiddle),
			BBLower:    num2(row.BBLower),
			ATR:        num2(row.ATR),
		})
	}
	return out
}

// LevelsResponse carries the detected support and resistance prices.
type LevelsResponse struct {
	Ticker       string    `json:"ticker"`
	CurrentPrice float64   `json:"current_price"`
	Supports     []float64 `json:"supports"`
	Resistances  []float64 `json:"resistances"`
}

// NewLevelsResponse rounds the level prices for the API boundary.
func NewLevelsResponse(ticker string, current float64, supports, resistances []float64) LevelsResponse {
	return LevelsResponse{
		Ticker:       ticker,
		CurrentPrice: candledto.Round2(current),
		Supports:     round2All(supports),
		Resistances:  round2All(resistances),
	}
}

// BuyTierResponse is one rung of the buy-price ladder.
type BuyTierResponse struct {
	Price           float64 `json:"price"`
	DiscountPercent float64 `json:"discount_percent"`
	Rationale       string  `json:"rationale"`
}

// SnapshotResponse summarizes the market state behind a recommendation.
type SnapshotResponse struct {
	RSI                      float64 `json:"rsi"`
	RSIStatus                string  `json:"rsi_status"`
	BollingerLower           float64 `json:"bollinger_lower"`
	BollingerPositionPercent float64 `json:"bollinger_position_percent"`
	NearestSupport           float64 `json:"nearest_support"`
	Low52Week                float64 `json:"low_52week"`
	ATR                      float64 `json:"atr"`
	Volatility               float64 `json:"volatility"`
}

// RecommendationResponse is the full buy-price recommendation payload.
type RecommendationResponse struct {
	Ticker       string           `json:"ticker"`
	CurrentPrice float64          `json:"current_price"`
	Aggressive   BuyTierResponse  `json:"aggressive"`
	Moderate     BuyTierResponse  `json:"moderate"`
	Conservative BuyTierResponse  `json:"conservative"`
	Analysis     SnapshotResponse `json:"analysis"`
}

// FromRecommendation converts a recommendation to response form.
func FromRecommendation(rec analysisentity.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		Ticker:       rec.Symbol,
		CurrentPrice: candledto.Round2(rec.CurrentPrice),
		Aggressive:   tier(rec.Aggressive),
		Moderate:     tier(rec.Moderate),
		Conservative: tier(rec.Conservative),
		Analysis: SnapshotResponse{
			RSI:                      candledto.Round2(rec.Analysis.RSI),
			RSIStatus:                rec.Analysis.RSIStatus,
			BollingerLower:           candledto.Round2(rec.Analysis.BollingerLower),
			BollingerPositionPercent: candledto.Round2(rec.Analysis.BollingerPositionPercent),
			NearestSupport:           candledto.Round2(rec.Analysis.NearestSupport),
			Low52Week:                candledto.Round2(rec.Analysis.Low52Week),
			ATR:                      candledto.Round2(rec.Analysis.ATR),
			Volatility:               candledto.Round2(rec.Analysis.Volatility),
		},
	}
}

func tier(t analysisentity.BuyTier) BuyTierResponse {
	return BuyTierResponse{
		Price:           candledto.Round2(t.Price),
		DiscountPercent: candledto.Round2(t.DiscountPercent),
		Rationale:       t.Rationale,
	}
}

func round2All(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		out = append(out, candledto.Round2(v))
	}
	return out
}

func num2(v float64) *float64 {
	if !analysisentity.Defined(v) {
		return nil
	}
	r := candledto.Round2(v)
	return &r
}

func num4(v float64) *float64 {
	if !analysisentity.Defined(v) {
		return nil
	}
	r := math.Round(v*10000) / 10000
	return &r
}
