// Package handler provides the HTTP handlers for the analysis feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Minji827/invest/internal/feature/analysis/domain"
	analysisentity "github.com/Minji827/invest/internal/feature/analysis/domain/entity"
	"github.com/Minji827/invest/internal/feature/analysis/transport/http/dto"
	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
	predictiondomain "github.com/Minji827/invest/internal/feature/prediction/domain"
	"github.com/Minji827/invest/internal/shared/api"
)

// AnalysisUsecase defines the derived-analytics operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler).
type AnalysisUsecase interface {
	Indicators(ctx context.Context, symbol, period string) ([]entity.Candle, analysisentity.Frame, error)
	Levels(ctx context.Context, symbol, period string) (current float64, supports, resistances []float64, err error)
	Recommend(ctx context.Context, symbol string) (analysisentity.Recommendation, error)
}

// AnalysisHandler serves indicator, level, and recommendation requests.
type AnalysisHandler struct {
	uc AnalysisUsecase
}

// NewAnalysisHandler creates an AnalysisHandler with the given usecase.
func NewAnalysisHandler(uc AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Indicators returns the full indicator frame for a ticker.
//
// Example:
// GET /api/stock/indicators?ticker=AAPL&period=6mo
func (h *AnalysisHandler) Indicators(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		c.JSON(http.StatusBadRequest, api.Fail("ticker is required"))
		return
	}
	period := c.DefaultQuery("period", "1y")

	_, frame, err := h.uc.Indicators(c.Request.Context(), ticker, period)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.OK(gin.H{
		"ticker":     ticker,
		"period":     period,
		"indicators": dto.FromFrame(frame),
	}))
}

// Levels returns detected support and resistance prices for a ticker.
//
// Example:
// GET /api/stock/levels?ticker=AAPL&period=1y
func (h *AnalysisHandler) Levels(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		c.JSON(http.StatusBadRequest, api.Fail("ticker is required"))
		return
	}
	period := c.DefaultQuery("period", "1y")

	current, supports, resistances, err := h.uc.Levels(c.Request.Context(), ticker, period)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.OK(dto.NewLevelsResponse(ticker, current, supports, resistances)))
}

// Recommendation returns the three-tier buy-price ladder for a ticker.
//
// Example:
// GET /api/stock/recommendation?ticker=AAPL
func (h *AnalysisHandler) Recommendation(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		c.JSON(http.StatusBadRequest, api.Fail("ticker is required"))
		return
	}

	rec, err := h.uc.Recommend(c.Request.Context(), ticker)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.OK(dto.FromRecommendation(rec)))
}

// respondError maps domain errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientHistory):
		c.JSON(http.StatusUnprocessableEntity, api.Fail(err.Error()))
	case errors.Is(err, predictiondomain.ErrModelNotTrained):
		c.JSON(http.StatusNotFound, api.Fail(err.Error()))
	default:
		c.JSON(http.StatusBadGateway, api.Fail(err.Error()))
	}
}
