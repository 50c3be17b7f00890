// Package dto defines the HTTP shapes for the prediction feature.
package dto

// PredictRequest is the body of a dip-prediction request.
type PredictRequest struct {
	Ticker string `json:"ticker" binding:"required"`
}

// PredictResponse carries the regressor output plus the feature vector it
// was scored on.
type PredictResponse struct {
	Ticker                 string    `json:"ticker"`
	PredictedChangePercent float64   `json:"predicted_change_percent"`
	Features               []float64 `json:"features"`
}
