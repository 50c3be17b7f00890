package usecase

import (
	"errors"
	"testing"

	"github.com/Minji827/invest/internal/feature/analysis/domain"
)

func TestFeatures_InsufficientHistory(t *testing.T) {
	t.Parallel()

	series := seriesFromCloses([]float64{100, 101, 102})
	frame := Compute(series)

	_, err := Features(series, frame)
	if !errors.Is(err, domain.ErrInsufficientHistory) {
		t.Fatalf("expected ErrInsufficientHistory, got %v", err)
	}
}

func TestFeatures_FrameLengthMismatch(t *testing.T) {
	t.Parallel()

	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 100
	}
	series := seriesFromCloses(closes)
	frame := Compute(series[:79])

	_, err := Features(series, frame)
	if !errors.Is(err, domain.ErrInsufficientHistory) {
		t.Fatalf("expected ErrInsufficientHistory on mismatched frame, got %v", err)
	}
}

func TestFeatures_VectorIsFullyPopulated(t *testing.T) {
	t.Parallel()

	closes := make([]float64, 80)
	price := 100.0
	for i := range closes {
		if i%2 == 0 {
			price += 2
		} else {
			price -= 1
		}
		closes[i] = price
	}
	series := seriesFromCloses(closes)
	frame := Compute(series)

	features, err := Features(series, frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range features {
		if v != v { // NaN check
			t.Fatalf("feature %d is NaN", i)
		}
	}
	if features[0] < 0 || features[0] > 100 {
		t.Errorf("rsi feature %v outside [0,100]", features[0])
	}
	if features[3] < 0 {
		t.Errorf("volatility feature %v negative", features[3])
	}
	// All volumes equal in the fixture, so the ratio is exactly 1.
	if features[6] != 1 {
		t.Errorf("volume ratio = %v, want 1", features[6])
	}
}

func TestFeatures_NeutralFallbacksOnFlatTape(t *testing.T) {
	t.Parallel()

	// A flat tape never defines RSI (no losses) and has a zero-width band,
	// so the neutral fallbacks must fill in.
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 100
	}
	series := seriesFromCloses(closes)
	frame := Compute(series)

	features, err := Features(series, frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if features[0] != 50 {
		t.Errorf("rsi fallback = %v, want 50", features[0])
	}
	if features[1] != 0.5 {
		t.Errorf("bollinger position fallback = %v, want 0.5", features[1])
	}
	if features[2] != 0 {
		t.Errorf("bollinger width = %v, want 0", features[2])
	}
	if features[3] != 0 {
		t.Errorf("volatility = %v, want 0 on a flat tape", features[3])
	}
}

func TestVolatility_ShortSeries(t *testing.T) {
	t.Parallel()

	if got := Volatility(nil); got != 0 {
		t.Errorf("Volatility(nil) = %v, want 0", got)
	}
	if got := Volatility(seriesFromCloses([]float64{100})); got != 0 {
		t.Errorf("Volatility of one bar = %v, want 0", got)
	}
}
