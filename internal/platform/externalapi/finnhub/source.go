package finnhub

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
	"github.com/Minji827/invest/internal/platform/externalapi/finnhub/dto"
)

// Source fetches daily candles from the Finnhub stock candle API.
type Source struct {
	cfg    Config
	client *http.Client
	now    func() time.Time
}

var _ usecase.CandleSource = (*Source)(nil)

// NewSource creates a Finnhub source with the given configuration and HTTP
// client.
func NewSource(cfg Config, client *http.Client) *Source {
	return &Source{cfg: cfg, client: client, now: time.Now}
}

// Name identifies this source in race logs.
func (s *Source) Name() string { return "finnhub" }

// FetchDaily retrieves daily bars for symbol over the last days calendar
// days and returns them as a canonical series. A "no_data" response maps to
// an empty result, not an error.
func (s *Source) FetchDaily(ctx context.Context, symbol string, days int) ([]entity.Candle, error) {
	end := s.now()
	start := end.AddDate(0, 0, -days)

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("resolution", "D")
	q.Set("from", strconv.FormatInt(start.Unix(), 10))
	q.Set("to", strconv.FormatInt(end.Unix(), 10))
	q.Set("token", s.cfg.APIKey)

	u := fmt.Sprintf("%s/stock/candle?%s", s.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("finnhub http %d", res.StatusCode)
	}

	var body dto.CandleResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("finnhub decode: %w", err)
	}
	if body.Status == "no_data" || len(body.Close) == 0 {
		return nil, nil
	}
	if body.Status != "ok" {
		return nil, fmt.Errorf("finnhub status %q", body.Status)
	}
	if len(body.Timestamp) != len(body.Close) {
		return nil, fmt.Errorf("finnhub: %d timestamps for %d closes", len(body.Timestamp), len(body.Close))
	}

	bars := make([]entity.Candle, 0, len(body.Close))
	for i := range body.Close {
		c := entity.Candle{
			Date:  time.Unix(body.Timestamp[i], 0).UTC(),
			Close: body.Close[i],
		}
		if i < len(body.Open) {
			c.Open = body.Open[i]
		}
		if i < len(body.High) {
			c.High = body.High[i]
		}
		if i < len(body.Low) {
			c.Low = body.Low[i]
		}
		if i < len(body.Volume) {
			c.Volume = body.Volume[i]
		}
		bars = append(bars, c)
	}

	return entity.NormalizeDaily(symbol, bars), nil
}
