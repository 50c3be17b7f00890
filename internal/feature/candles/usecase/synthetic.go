package usecase

import (
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
)

// Drift parameters for the synthetic random walk.
const (
	syntheticDriftMean = 0.001
	syntheticDriftStd  = 0.02
	syntheticMinVol    = 0.005
	syntheticMaxVol    = 0.02
)

// baselinePrices anchors synthetic series for well-known tickers so the
// generated data stays in a plausible price range. Unknown symbols start
// at 100.
var baselinePrices = map[string]float64{
	"AAPL":  175.0,
	"MSFT":  380.0,
	"GOOGL": 140.0,
	"AMZN":  180.0,
	"NVDA":  480.0,
	"META":  350.0,
	"TSLA":  250.0,
	"AMD":   140.0,
	"NFLX":  480.0,
	"INTC":  45.0,
}

// syntheticSeed derives a stable seed from the symbol so repeated calls for
// the same symbol produce the same series.
func syntheticSeed(symbol string) int64 {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	return int64(h.Sum64())
}

// GenerateSyntheticSeries builds a deterministic daily series of the given
// length ending on the calendar day of end. The first bar closes exactly at
// the symbol's baseline price; later closes follow a seeded random walk.
func GenerateSyntheticSeries(symbol string, days int, end time.Time) []entity.Candle {
	if days <= 0 {
		days = 1
	}
	base, ok := baselinePrices[symbol]
	if !ok {
		base = 100.0
	}

	rng := rand.New(rand.NewSource(syntheticSeed(symbol)))

	closes := make([]float64, days)
	closes[0] = base
	for i := 1; i < days; i++ {
		r := rng.NormFloat64()*syntheticDriftStd + syntheticDriftMean
		closes[i] = closes[i-1] * (1 + r)
	}

	start := entity.Day(end).AddDate(0, 0, -(days - 1))
	out := make([]entity.Candle, days)
	for i := range out {
		price := closes[i]
		vol := syntheticMinVol + rng.Float64()*(syntheticMaxVol-syntheticMinVol)
		out[i] = entity.Candle{
			Symbol: symbol,
			Date:   start.AddDate(0, 0, i),
			Open:   price * (1 + (rng.Float64()*2-1)*vol),
			High:   price * (1 + rng.Float64()*vol*2),
			Low:    price * (1 - rng.Float64()*vol*2),
			Close:  price,
			Volume: int64(50_000_000 + rng.Float64()*100_000_000),
		}
	}
	return out
}
