// Package usecase implements dip prediction against externally trained
// regressor artifacts.
package usecase

import (
	"context"
	"fmt"

	"github.com/Minji827/invest/internal/feature/prediction/domain/entity"
)

// ArtifactStore loads the trained regressor artifact for a symbol.
// It returns domain.ErrModelNotTrained when no artifact exists.
// Following Go convention: interfaces are defined by the consumer (usecase).
type ArtifactStore interface {
	Load(ctx context.Context, symbol string) (entity.Artifact, error)
}

// PredictUsecase evaluates the opaque trained regressor for a symbol.
type PredictUsecase struct {
	artifacts ArtifactStore
}

// NewPredictUsecase creates a PredictUsecase over the given artifact store.
func NewPredictUsecase(artifacts ArtifactStore) *PredictUsecase {
	return &PredictUsecase{artifacts: artifacts}
}

// PredictDip returns the regressor's expected price change in percent for
// the latest bar's feature vector. Negative values signal a dip.
func (u *PredictUsecase) PredictDip(ctx context.Context, symbol string, features [entity.FeatureCount]float64) (float64, error) {
	artifact, err := u.artifacts.Load(ctx, symbol)
	if err != nil {
		return 0, err
	}
	if !artifact.Valid() {
		return 0, fmt.Errorf("artifact for %s has malformed vectors", symbol)
	}
	return artifact.Predict(features), nil
}
