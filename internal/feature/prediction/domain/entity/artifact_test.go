package entity

import (
	"math"
	"testing"
)

func TestArtifact_Valid(t *testing.T) {
	t.Parallel()

	full := make([]float64, FeatureCount)

	tests := []struct {
		name string
		a    Artifact
		want bool
	}{
		{"all vectors full width", Artifact{Mean: full, Scale: full, Coef: full}, true},
		{"empty artifact", Artifact{}, false},
		{"short coef", Artifact{Mean: full, Scale: full, Coef: full[:3]}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.a.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArtifact_Predict(t *testing.T) {
	t.Parallel()

	a := Artifact{
		Mean:      []float64{1, 0, 0, 0, 0, 0, 0, 0},
		Scale:     []float64{2, 1, 1, 1, 1, 1, 1, 1},
		Coef:      []float64{4, 0, 0, 0, 0, 0, 0, 0},
		Intercept: -1,
	}

	// Only the first feature contributes: 4 * ((5 - 1) / 2) - 1 = 7.
	got := a.Predict([FeatureCount]float64{5})
	if math.Abs(got-7) > 1e-12 {
		t.Errorf("Predict = %v, want 7", got)
	}
}

func TestArtifact_PredictZeroScaleIsGuarded(t *testing.T) {
	t.Parallel()

	a := Artifact{
		Mean:  make([]float64, FeatureCount),
		Scale: make([]float64, FeatureCount), // all zero
		Coef:  []float64{1, 0, 0, 0, 0, 0, 0, 0},
	}

	// A zero scale divides by one instead of exploding: 1 * (3 - 0) / 1 = 3.
	got := a.Predict([FeatureCount]float64{3})
	if got != 3 {
		t.Errorf("Predict = %v, want 3", got)
	}
}
