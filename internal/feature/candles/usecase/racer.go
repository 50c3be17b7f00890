package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
)

// DefaultSourceTimeout bounds a single upstream call inside a race.
const DefaultSourceTimeout = 15 * time.Second

// CandleSource fetches daily bars for a symbol from one upstream provider.
// An empty slice with a nil error means the provider had no data for the
// request; the racer treats errors the same way after logging them.
// Following Go convention: interfaces are defined by the consumer (usecase).
type CandleSource interface {
	Name() string
	FetchDaily(ctx context.Context, symbol string, days int) ([]entity.Candle, error)
}

// Racer launches every source concurrently and returns the first non-empty
// result. Losing sources are never cancelled, only result-discarded: they
// complete in the background and their bars land in a buffered channel that
// nothing reads after the race has been decided.
type Racer struct {
	sources []CandleSource
	timeout time.Duration
	now     func() time.Time
}

// NewRacer creates a Racer over the given sources. If timeout is zero or
// negative, DefaultSourceTimeout is used for each upstream call.
func NewRacer(sources []CandleSource, timeout time.Duration) *Racer {
	if timeout <= 0 {
		timeout = DefaultSourceTimeout
	}
	return &Racer{sources: sources, timeout: timeout, now: time.Now}
}

type raceResult struct {
	source string
	bars   []entity.Candle
}

// Race fetches symbol's daily bars from all sources at once. No source has
// fixed priority: whichever non-empty result arrives first wins. If every
// source comes back empty or failed, a deterministic synthetic series is
// returned instead so callers never see a hard failure here.
func (r *Racer) Race(ctx context.Context, symbol string, days int) []entity.Candle {
	// Buffered to the source count so losers can always deliver and exit.
	results := make(chan raceResult, len(r.sources))

	for _, src := range r.sources {
		go func(src CandleSource) {
			// Detached from the caller so a lost racer can still run to
			// completion after Race returns, bounded by its own timeout.
			cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
			defer cancel()

			bars, err := src.FetchDaily(cctx, symbol, days)
			if err != nil {
				slog.Warn("candle source failed", "source", src.Name(), "symbol", symbol, "error", err)
				results <- raceResult{source: src.Name()}
				return
			}
			results <- raceResult{source: src.Name(), bars: bars}
		}(src)
	}

	for range r.sources {
		res := <-results
		if len(res.bars) > 0 {
			slog.Info("candle source won race", "source", res.source, "symbol", symbol, "bars", len(res.bars))
			return res.bars
		}
	}

	slog.Warn("all candle sources empty, falling back to synthetic series", "symbol", symbol)
	return GenerateSyntheticSeries(symbol, days, r.now())
}
