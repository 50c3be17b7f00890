package usecase

import (
	"testing"
	"time"

	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
)

func TestGenerateSyntheticSeries_Deterministic(t *testing.T) {
	t.Parallel()

	end := time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC)

	a := GenerateSyntheticSeries("AAPL", 30, end)
	b := GenerateSyntheticSeries("AAPL", 30, end)

	if len(a) != 30 || len(b) != 30 {
		t.Fatalf("expected 30 bars, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("bar %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateSyntheticSeries_BaselineAnchor(t *testing.T) {
	t.Parallel()

	end := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		symbol string
		base   float64
	}{
		{"AAPL", 175.0},
		{"MSFT", 380.0},
		{"INTC", 45.0},
		{"UNKNOWN", 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			t.Parallel()

			series := GenerateSyntheticSeries(tt.symbol, 30, end)
			if series[0].Close != tt.base {
				t.Errorf("expected first close %v, got %v", tt.base, series[0].Close)
			}
		})
	}
}

func TestGenerateSyntheticSeries_Shape(t *testing.T) {
	t.Parallel()

	end := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	series := GenerateSyntheticSeries("TSLA", 90, end)

	if len(series) != 90 {
		t.Fatalf("expected 90 bars, got %d", len(series))
	}
	if got := series[len(series)-1].Date; !got.Equal(entity.Day(end)) {
		t.Errorf("expected last bar on %v, got %v", entity.Day(end), got)
	}

	prev := series[0].Date.AddDate(0, 0, -1)
	for i, c := range series {
		if c.Symbol != "TSLA" {
			t.Fatalf("bar %d has symbol %q", i, c.Symbol)
		}
		if c.Close <= 0 || c.Open <= 0 || c.High <= 0 || c.Low <= 0 {
			t.Fatalf("bar %d has non-positive price: %+v", i, c)
		}
		if c.Volume < 50_000_000 || c.Volume > 150_000_000 {
			t.Fatalf("bar %d volume %d outside expected range", i, c.Volume)
		}
		if !c.Date.Equal(prev.AddDate(0, 0, 1)) {
			t.Fatalf("bar %d date %v not consecutive after %v", i, c.Date, prev)
		}
		prev = c.Date
	}
}

func TestGenerateSyntheticSeries_ZeroDays(t *testing.T) {
	t.Parallel()

	series := GenerateSyntheticSeries("AAPL", 0, time.Now())
	if len(series) != 1 {
		t.Fatalf("expected 1 bar for non-positive days, got %d", len(series))
	}
}
