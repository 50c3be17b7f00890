// Package usecase implements the volatility watch scan over many symbols.
package usecase

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	candleentity "github.com/Minji827/invest/internal/feature/candles/domain/entity"
	"github.com/Minji827/invest/internal/feature/screener/domain/entity"
)

// Scan defaults.
const (
	DefaultThresholdPercent = 5.0
	maxConcurrentScans      = 10
	scanLookbackDays        = 30
)

// SeriesResolver resolves a symbol's recent daily series.
// Following Go convention: interfaces are defined by the consumer (usecase).
type SeriesResolver interface {
	ResolveDays(ctx context.Context, symbol string, days int) ([]candleentity.Candle, error)
}

// ScanUsecase screens a symbol list for large single-day moves.
type ScanUsecase struct {
	resolver SeriesResolver
}

// NewScanUsecase creates a ScanUsecase over the given resolver.
func NewScanUsecase(resolver SeriesResolver) *ScanUsecase {
	return &ScanUsecase{resolver: resolver}
}

// Scan resolves every symbol on a bounded worker pool and returns alerts for
// those whose latest close-to-close move is at least thresholdPercent in
// either direction, sorted by absolute move descending. A symbol that fails
// to resolve is logged and skipped; the scan itself does not fail.
func (u *ScanUsecase) Scan(ctx context.Context, symbols []string, thresholdPercent float64) ([]entity.VolatilityAlert, error) {
	if thresholdPercent <= 0 {
		thresholdPercent = DefaultThresholdPercent
	}

	var (
		mu     sync.Mutex
		alerts []entity.VolatilityAlert
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScans)

	for _, symbol := range symbols {
		g.Go(func() error {
			series, err := u.resolver.ResolveDays(gctx, symbol, scanLookbackDays)
			if err != nil {
				slog.Warn("volatility scan skipped symbol", "symbol", symbol, "error", err)
				return nil
			}
			alert, ok := latestMove(symbol, series, thresholdPercent)
			if !ok {
				return nil
			}
			mu.Lock()
			alerts = append(alerts, alert)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(alerts, func(i, j int) bool {
		return math.Abs(alerts[i].ChangePercent) > math.Abs(alerts[j].ChangePercent)
	})
	return alerts, nil
}

// latestMove inspects the final two bars of a series against the threshold.
func latestMove(symbol string, series []candleentity.Candle, thresholdPercent float64) (entity.VolatilityAlert, bool) {
	if len(series) < 2 {
		return entity.VolatilityAlert{}, false
	}
	last := series[len(series)-1]
	prev := series[len(series)-2]
	if prev.Close == 0 {
		return entity.VolatilityAlert{}, false
	}

	change := (last.Close - prev.Close) / prev.Close * 100
	if math.Abs(change) < thresholdPercent {
		return entity.VolatilityAlert{}, false
	}

	direction := entity.DirectionUp
	if change < 0 {
		direction = entity.DirectionDown
	}
	return entity.VolatilityAlert{
		Symbol:        symbol,
		Date:          last.Date,
		Close:         last.Close,
		PrevClose:     prev.Close,
		ChangePercent: change,
		Direction:     direction,
	}, true
}
