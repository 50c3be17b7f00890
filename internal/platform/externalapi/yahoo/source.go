package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
	"github.com/Minji827/invest/internal/feature/candles/usecase"
	"github.com/Minji827/invest/internal/platform/externalapi/yahoo/dto"
)

// Source fetches daily candles from the Yahoo Finance chart API.
type Source struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Source implements the racer's source contract.
var _ usecase.CandleSource = (*Source)(nil)

// NewSource creates a Yahoo Finance source with the given configuration and
// HTTP client.
func NewSource(cfg Config, client *http.Client) *Source {
	return &Source{cfg: cfg, client: client}
}

// Name identifies this source in race logs.
func (s *Source) Name() string { return "yahoo" }

// rangeFor maps a lookback in days to the nearest Yahoo chart range bucket,
// rounding up when the exact value is unsupported.
func rangeFor(days int) string {
	switch {
	case days <= 30:
		return "1mo"
	case days <= 90:
		return "3mo"
	case days <= 180:
		return "6mo"
	case days <= 365:
		return "1y"
	case days <= 1825:
		return "5y"
	default:
		return "max"
	}
}

// FetchDaily retrieves daily bars for symbol covering at least the requested
// lookback and returns them as a canonical series.
func (s *Source) FetchDaily(ctx context.Context, symbol string, days int) ([]entity.Candle, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		s.cfg.BaseURL, url.PathEscape(symbol), rangeFor(days))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	// Yahoo rejects requests without a browser-like agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo: %s", body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	result := body.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	bars := make([]entity.Candle, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue // null bar (holiday, halted session)
		}
		c := entity.Candle{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *quote.Close[i],
		}
		if i < len(quote.Open) && quote.Open[i] != nil {
			c.Open = *quote.Open[i]
		}
		if i < len(quote.High) && quote.High[i] != nil {
			c.High = *quote.High[i]
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			c.Low = *quote.Low[i]
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			c.Volume = *quote.Volume[i]
		}
		bars = append(bars, c)
	}

	return entity.NormalizeDaily(symbol, bars), nil
}
