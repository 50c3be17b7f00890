package entity

// RSI interpretation labels used in the analysis snapshot.
const (
	RSIOversold   = "oversold"
	RSINeutral    = "neutral"
	RSIOverbought = "overbought"
)

// BuyTier is one rung of the buy-price ladder. DiscountPercent is the
// distance below the current price; Rationale names the dominant factor
// behind the tier's raw value before clamping.
type BuyTier struct {
	Price           float64
	DiscountPercent float64
	Rationale       string
}

// Snapshot captures the analytics that fed the recommendation.
type Snapshot struct {
	RSI                      float64
	RSIStatus                string
	BollingerLower           float64
	BollingerPositionPercent float64
	NearestSupport           float64 // 0 when no support sits below the current price
	Low52Week                float64
	ATR                      float64
	Volatility               float64
}

// Recommendation is the three-tier buy-price result for one symbol.
// Invariant: Conservative.Price < Moderate.Price < Aggressive.Price <
// CurrentPrice, enforced by the synthesizer's clamp cascade.
type Recommendation struct {
	Symbol       string
	CurrentPrice float64
	Aggressive   BuyTier
	Moderate     BuyTier
	Conservative BuyTier
	Analysis     Snapshot
}
