// Package entity defines the domain models for the prediction feature.
package entity

// FeatureCount is the width of the regressor input vector.
const FeatureCount = 8

// Artifact is a trained standardized linear regressor for one symbol,
// produced by an external training job. Mean and Scale hold the feature
// scaler; Coef and Intercept the fitted model. The artifact predicts the
// expected price change in percent (negative values signal a dip).
type Artifact struct {
	Symbol    string    `json:"symbol"`
	Mean      []float64 `json:"mean"`
	Scale     []float64 `json:"scale"`
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

// Valid reports whether the artifact's vectors all have the expected width.
func (a Artifact) Valid() bool {
	return len(a.Mean) == FeatureCount &&
		len(a.Scale) == FeatureCount &&
		len(a.Coef) == FeatureCount
}

// Predict standardizes the feature vector and applies the linear model.
func (a Artifact) Predict(features [FeatureCount]float64) float64 {
	out := a.Intercept
	for i, v := range features {
		scale := a.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out += a.Coef[i] * ((v - a.Mean[i]) / scale)
	}
	return out
}
