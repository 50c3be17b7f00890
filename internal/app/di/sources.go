// Package di provides dependency injection factories for creating application components.
package di

import (
	candlesusecase "github.com/Minji827/invest/internal/feature/candles/usecase"
	"github.com/Minji827/invest/internal/platform/externalapi/alphavantage"
	"github.com/Minji827/invest/internal/platform/externalapi/finnhub"
	"github.com/Minji827/invest/internal/platform/externalapi/yahoo"
	infrahttp "github.com/Minji827/invest/internal/platform/http"
)

// NewSources creates the configured upstream candle sources in race-priority
// order.
func NewSources() []candlesusecase.CandleSource {
	yahooCfg := yahoo.LoadConfig()
	finnhubCfg := finnhub.LoadConfig()
	alphaCfg := alphavantage.LoadConfig()

	return []candlesusecase.CandleSource{
		yahoo.NewSource(yahooCfg, infrahttp.NewHTTPClient(yahooCfg.Timeout)),
		finnhub.NewSource(finnhubCfg, infrahttp.NewHTTPClient(finnhubCfg.Timeout)),
		alphavantage.NewSource(alphaCfg, infrahttp.NewHTTPClient(alphaCfg.Timeout)),
	}
}

// NewRacer creates the source racer over the configured sources.
func NewRacer() *candlesusecase.Racer {
	return candlesusecase.NewRacer(NewSources(), candlesusecase.DefaultSourceTimeout)
}
