// Package handler provides the HTTP handlers for the prediction feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	analysisdomain "github.com/Minji827/invest/internal/feature/analysis/domain"
	"github.com/Minji827/invest/internal/feature/prediction/domain"
	"github.com/Minji827/invest/internal/feature/prediction/domain/entity"
	"github.com/Minji827/invest/internal/feature/prediction/transport/http/dto"
	"github.com/Minji827/invest/internal/shared/api"
)

// ForecastUsecase produces the feature vector and dip prediction for a
// symbol. Following Go convention: interfaces are defined by the consumer
// (handler).
type ForecastUsecase interface {
	FeatureVector(ctx context.Context, symbol string) ([entity.FeatureCount]float64, float64, error)
}

// PredictHandler serves dip-prediction requests.
type PredictHandler struct {
	uc ForecastUsecase
}

// NewPredictHandler creates a PredictHandler with the given usecase.
func NewPredictHandler(uc ForecastUsecase) *PredictHandler {
	return &PredictHandler{uc: uc}
}

// Predict scores the symbol's current feature vector with its trained
// regressor.
//
// Example:
// POST /api/stock/predict {"ticker":"AAPL"}
func (h *PredictHandler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Fail("ticker is required"))
		return
	}

	features, prediction, err := h.uc.FeatureVector(c.Request.Context(), req.Ticker)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrModelNotTrained):
			c.JSON(http.StatusNotFound, api.Fail(err.Error()))
		case errors.Is(err, analysisdomain.ErrInsufficientHistory):
			c.JSON(http.StatusUnprocessableEntity, api.Fail(err.Error()))
		default:
			c.JSON(http.StatusBadGateway, api.Fail(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, api.OK(dto.PredictResponse{
		Ticker:                 req.Ticker,
		PredictedChangePercent: prediction,
		Features:               features[:],
	}))
}
