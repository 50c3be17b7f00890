package usecase

import (
	"context"

	"github.com/Minji827/invest/internal/feature/analysis/domain"
	analysisentity "github.com/Minji827/invest/internal/feature/analysis/domain/entity"
	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
)

// recommendationPeriod is the lookback used when synthesizing buy tiers.
const recommendationPeriod = "1y"

// SeriesResolver resolves a symbol's daily series for a named period.
// Following Go convention: interfaces are defined by the consumer (usecase).
type SeriesResolver interface {
	Resolve(ctx context.Context, symbol, period string) ([]entity.Candle, error)
}

// DipPredictor scores a feature vector and returns the expected short-term
// move in percent (negative means a dip).
type DipPredictor interface {
	PredictDip(ctx context.Context, symbol string, features [FeatureCount]float64) (float64, error)
}

// AnalysisUsecase orchestrates the derived-analytics operations over
// resolved candle series.
type AnalysisUsecase struct {
	resolver  SeriesResolver
	predictor DipPredictor
}

// NewAnalysisUsecase creates an AnalysisUsecase with the given dependencies.
func NewAnalysisUsecase(resolver SeriesResolver, predictor DipPredictor) *AnalysisUsecase {
	return &AnalysisUsecase{resolver: resolver, predictor: predictor}
}

// Indicators resolves a series and computes its full indicator frame.
func (u *AnalysisUsecase) Indicators(ctx context.Context, symbol, period string) ([]entity.Candle, analysisentity.Frame, error) {
	series, err := u.resolver.Resolve(ctx, symbol, period)
	if err != nil {
		return nil, nil, err
	}
	if len(series) == 0 {
		return nil, nil, domain.ErrInsufficientHistory
	}
	return series, Compute(series), nil
}

// Levels resolves a series and detects its support and resistance levels.
// The last close is returned alongside so callers can place the levels
// relative to the current price.
func (u *AnalysisUsecase) Levels(ctx context.Context, symbol, period string) (current float64, supports, resistances []float64, err error) {
	series, err := u.resolver.Resolve(ctx, symbol, period)
	if err != nil {
		return 0, nil, nil, err
	}
	if len(series) == 0 {
		return 0, nil, nil, domain.ErrInsufficientHistory
	}
	supports, resistances = DetectLevels(series, DefaultLevelWindow)
	return series[len(series)-1].Close, supports, resistances, nil
}

// Recommend resolves a year of history and synthesizes the three buy-price
// tiers. The dip prediction comes from the per-symbol regressor; a missing
// model artifact surfaces as prediction.ErrModelNotTrained.
func (u *AnalysisUsecase) Recommend(ctx context.Context, symbol string) (analysisentity.Recommendation, error) {
	series, err := u.resolver.Resolve(ctx, symbol, recommendationPeriod)
	if err != nil {
		return analysisentity.Recommendation{}, err
	}

	frame := Compute(series)
	supports, resistances := DetectLevels(series, DefaultLevelWindow)

	features, err := Features(series, frame)
	if err != nil {
		return analysisentity.Recommendation{}, err
	}
	dip, err := u.predictor.PredictDip(ctx, symbol, features)
	if err != nil {
		return analysisentity.Recommendation{}, err
	}

	return Synthesize(symbol, series, frame, supports, resistances, dip)
}

// FeatureVector resolves a year of history and returns the regressor inputs
// alongside the model's prediction.
func (u *AnalysisUsecase) FeatureVector(ctx context.Context, symbol string) ([FeatureCount]float64, float64, error) {
	var zero [FeatureCount]float64

	series, err := u.resolver.Resolve(ctx, symbol, recommendationPeriod)
	if err != nil {
		return zero, 0, err
	}
	frame := Compute(series)

	features, err := Features(series, frame)
	if err != nil {
		return zero, 0, err
	}
	dip, err := u.predictor.PredictDip(ctx, symbol, features)
	if err != nil {
		return zero, 0, err
	}
	return features, dip, nil
}
