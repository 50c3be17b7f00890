// Package usecase implements the candle resolution pipeline: cache-aside
// reads against the persistent store, a provider race on miss, and the
// synthetic fallback when every provider is down.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
)

// FreshnessWindow is how long a stored series stays fresh. A store entry
// refreshed within this window short-circuits provider calls entirely.
const FreshnessWindow = 24 * time.Hour

// CandleStore abstracts the persistent bar store and its per-symbol
// freshness metadata. Read returns a nil slice when no fresh data covers
// the requested lookback; Write upserts bars and stamps the symbol's
// last-refreshed time in one atomic operation.
type CandleStore interface {
	Read(ctx context.Context, symbol string, lookbackDays int) ([]entity.Candle, error)
	Write(ctx context.Context, symbol string, bars []entity.Candle) error
}

// SourceRacer races the configured providers and always produces a series.
type SourceRacer interface {
	Race(ctx context.Context, symbol string, days int) []entity.Candle
}

// ResolveUsecase is the cache-aside orchestrator: store first, then race
// providers, then persist best-effort. Concurrent resolves for the same
// symbol may both miss and both race; that is acceptable because the store
// write is an idempotent upsert.
type ResolveUsecase struct {
	store CandleStore
	racer SourceRacer
}

// NewResolveUsecase creates a ResolveUsecase over the given store and racer.
func NewResolveUsecase(store CandleStore, racer SourceRacer) *ResolveUsecase {
	return &ResolveUsecase{store: store, racer: racer}
}

// Resolve returns the daily series for symbol over the named period
// ("1mo", "3mo", "6mo", "1y", "5y", "max").
func (u *ResolveUsecase) Resolve(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
	return u.ResolveDays(ctx, symbol, PeriodToDays(period))
}

// ResolveDays is Resolve with an explicit lookback in days.
func (u *ResolveUsecase) ResolveDays(ctx context.Context, symbol string, days int) ([]entity.Candle, error) {
	cached, err := u.store.Read(ctx, symbol, days)
	if err != nil {
		// A broken store read degrades to a miss; the providers can still serve.
		slog.Warn("candle store read failed", "symbol", symbol, "error", err)
	}
	if len(cached) > 0 {
		return cached, nil
	}

	bars := u.racer.Race(ctx, symbol, days)

	// The winning result is persisted before this call returns, so a slower
	// provider finishing later can never overwrite it within this resolve.
	if err := u.store.Write(ctx, symbol, bars); err != nil {
		slog.Error("candle store write failed", "symbol", symbol, "error", err)
	}
	return bars, nil
}
