package usecase

import (
	"math"

	"github.com/Minji827/invest/internal/feature/analysis/domain"
	analysisentity "github.com/Minji827/invest/internal/feature/analysis/domain/entity"
	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
)

// MinRecommendationBars is the shortest series the synthesizer accepts.
const MinRecommendationBars = 60

// Blend and clamp constants for the buy-price ladder. The weights are
// hand-tuned and carried as configuration, not derived.
const (
	fallbackDipPercent = 2.0  // used when the regressor sees no dip
	maxDipPercent      = 15.0 // deeper predictions are capped here

	aggressiveDipWeight   = 0.3
	moderateDipWeight     = 0.6
	conservativeDipWeight = 1.0

	aggressiveCapRatio    = 0.99 // of current price
	moderateTierRatio     = 0.97 // of aggressive
	moderateCapRatio      = 0.95 // of current price
	conservativeTierRatio = 0.95 // of moderate
	conservativeCapRatio  = 0.90 // of current price
)

// RSI thresholds for the snapshot status label.
const (
	rsiOversoldBelow   = 30.0
	rsiOverboughtAbove = 70.0
)

// week52Bars is the trading-day window scanned for the 52-week low.
const week52Bars = 252

// Rationale tags reported per tier.
const (
	RationaleShallowDip     = "shallow_dip"
	RationaleScaledDip      = "scaled_dip"
	RationaleBollingerBlend = "bollinger_blend"
	RationaleSupportBlend   = "support_blend"
	RationaleMA60Floor      = "ma60_floor"
	RationaleDeepDip        = "deep_dip"
)

// Synthesize combines the indicator frame, detected levels, and the external
// dip prediction into three buy-price tiers. dipPrediction is the regressor
// output in percent; non-negative values mean "no dip signal" and are
// replaced by the fixed fallback discount. The returned tiers always satisfy
// conservative < moderate < aggressive < current, enforced by the clamp
// cascade rather than by the blended inputs.
func Synthesize(symbol string, series []entity.Candle, frame analysisentity.Frame,
	supports, resistances []float64, dipPrediction float64) (analysisentity.Recommendation, error) {

	if len(series) < MinRecommendationBars || len(frame) != len(series) {
		return analysisentity.Recommendation{}, domain.ErrInsufficientHistory
	}

	current := series[len(series)-1].Close
	row, ok := frame.Last()
	if !ok {
		return analysisentity.Recommendation{}, domain.ErrInsufficientHistory
	}

	dip := fallbackDipPercent
	if dipPrediction < 0 {
		dip = math.Min(-dipPrediction, maxDipPercent)
	}

	nearestSupport := nearestBelow(supports, current)

	// Raw tier values from the blended factors. Each may land anywhere;
	// the cascade below is what guarantees the ordering invariant.
	aggressive := analysisentity.BuyTier{
		Price:     current * (1 - aggressiveDipWeight*dip/100),
		Rationale: RationaleShallowDip,
	}

	moderate := analysisentity.BuyTier{
		Price:     current * (1 - moderateDipWeight*dip/100),
		Rationale: RationaleScaledDip,
	}
	if analysisentity.Defined(row.BBLower) && row.BBLower > 0 && row.BBLower < current {
		moderate.Price = (moderate.Price + row.BBLower) / 2
		moderate.Rationale = RationaleBollingerBlend
	}

	conservative := analysisentity.BuyTier{
		Price:     current * (1 - conservativeDipWeight*dip/100),
		Rationale: RationaleDeepDip,
	}
	switch {
	case nearestSupport > 0:
		conservative.Price = (conservative.Price + nearestSupport) / 2
		conservative.Rationale = RationaleSupportBlend
	case analysisentity.Defined(row.MA60) && row.MA60 > 0 && row.MA60 < current:
		conservative.Price = math.Min(conservative.Price, row.MA60)
		conservative.Rationale = RationaleMA60Floor
	}

	// Clamp cascade: aggressive below current, moderate below aggressive,
	// conservative below moderate, regardless of the blended inputs.
	aggressive.Price = math.Min(aggressive.Price, aggressiveCapRatio*current)
	moderate.Price = math.Min(moderate.Price,
		math.Min(moderateTierRatio*aggressive.Price, moderateCapRatio*current))
	conservative.Price = math.Min(conservative.Price,
		math.Min(conservativeTierRatio*moderate.Price, conservativeCapRatio*current))

	aggressive.DiscountPercent = discount(current, aggressive.Price)
	moderate.DiscountPercent = discount(current, moderate.Price)
	conservative.DiscountPercent = discount(current, conservative.Price)

	return analysisentity.Recommendation{
		Symbol:       symbol,
		CurrentPrice: current,
		Aggressive:   aggressive,
		Moderate:     moderate,
		Conservative: conservative,
		Analysis:     buildSnapshot(series, row, nearestSupport, current),
	}, nil
}

func buildSnapshot(series []entity.Candle, row analysisentity.IndicatorRow,
	nearestSupport, current float64) analysisentity.Snapshot {

	snap := analysisentity.Snapshot{
		RSIStatus:      analysisentity.RSINeutral,
		NearestSupport: nearestSupport,
		Low52Week:      low52Week(series),
		Volatility:     Volatility(series),
	}

	if analysisentity.Defined(row.RSI) {
		snap.RSI = row.RSI
		switch {
		case row.RSI < rsiOversoldBelow:
			snap.RSIStatus = analysisentity.RSIOversold
		case row.RSI > rsiOverboughtAbove:
			snap.RSIStatus = analysisentity.RSIOverbought
		}
	}
	if analysisentity.Defined(row.BBLower) {
		snap.BollingerLower = row.BBLower
	}
	if analysisentity.Defined(row.BBUpper) && analysisentity.Defined(row.BBLower) {
		if band := row.BBUpper - row.BBLower; band > 0 {
			snap.BollingerPositionPercent = (current - row.BBLower) / band * 100
		}
	}
	if analysisentity.Defined(row.ATR) {
		snap.ATR = row.ATR
	}
	return snap
}

// nearestBelow picks the highest level strictly below price, or 0 when no
// level qualifies.
func nearestBelow(levels []float64, price float64) float64 {
	best := 0.0
	for _, l := range levels {
		if l < price && l > best {
			best = l
		}
	}
	return best
}

// low52Week scans the most recent 252 bars for the lowest low.
func low52Week(series []entity.Candle) float64 {
	start := len(series) - week52Bars
	if start < 0 {
		start = 0
	}
	low := math.Inf(1)
	for _, c := range series[start:] {
		if c.Low < low {
			low = c.Low
		}
	}
	if math.IsInf(low, 1) {
		return 0
	}
	return low
}

func discount(current, price float64) float64 {
	if current == 0 {
		return 0
	}
	return (current - price) / current * 100
}
