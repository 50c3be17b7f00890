package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
	"github.com/Minji827/invest/internal/feature/candles/usecase"
	"github.com/Minji827/invest/internal/platform/externalapi/alphavantage/dto"
)

// compactWindow is the largest lookback served by outputsize=compact
// (the latest 100 data points); anything longer needs the full series.
const compactWindow = 100

// Source fetches daily candles from the Alpha Vantage API.
type Source struct {
	cfg    Config
	client *http.Client
	now    func() time.Time
}

var _ usecase.CandleSource = (*Source)(nil)

// NewSource creates an Alpha Vantage source with the given configuration and
// HTTP client.
func NewSource(cfg Config, client *http.Client) *Source {
	return &Source{cfg: cfg, client: client, now: time.Now}
}

// Name identifies this source in race logs.
func (s *Source) Name() string { return "alphavantage" }

// FetchDaily retrieves daily bars for symbol over the last days calendar
// days. When the source is disabled it returns empty immediately, with no
// network call; the racer does not count that as a provider failure.
func (s *Source) FetchDaily(ctx context.Context, symbol string, days int) ([]entity.Candle, error) {
	if s.cfg.Disabled() {
		return nil, nil
	}

	outputsize := "compact"
	if days > compactWindow {
		outputsize = "full"
	}

	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", symbol)
	q.Set("outputsize", outputsize)
	q.Set("apikey", s.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("alphavantage http %d", res.StatusCode)
	}

	var body dto.DailyResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}
	if len(body.Series) == 0 {
		switch {
		case body.ErrorMsg != "":
			return nil, fmt.Errorf("alphavantage: %s", body.ErrorMsg)
		case body.Note != "":
			return nil, fmt.Errorf("alphavantage rate limited: %s", body.Note)
		case body.Information != "":
			return nil, fmt.Errorf("alphavantage: %s", body.Information)
		}
		return nil, nil
	}

	cutoff := entity.Day(s.now().AddDate(0, 0, -days))

	bars := make([]entity.Candle, 0, len(body.Series))
	for date, v := range body.Series {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", date, err)
		}
		if day.Before(cutoff) {
			continue
		}
		o, err := strconv.ParseFloat(v.Open, 64)
		if err != nil {
			return nil, fmt.Errorf("parse open %q: %w", v.Open, err)
		}
		h, err := strconv.ParseFloat(v.High, 64)
		if err != nil {
			return nil, fmt.Errorf("parse high %q: %w", v.High, err)
		}
		l, err := strconv.ParseFloat(v.Low, 64)
		if err != nil {
			return nil, fmt.Errorf("parse low %q: %w", v.Low, err)
		}
		c, err := strconv.ParseFloat(v.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close %q: %w", v.Close, err)
		}
		vol, err := strconv.ParseInt(v.Volume, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse volume %q: %w", v.Volume, err)
		}

		bars = append(bars, entity.Candle{
			Date:   day,
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: vol,
		})
	}

	return entity.NormalizeDaily(symbol, bars), nil
}
