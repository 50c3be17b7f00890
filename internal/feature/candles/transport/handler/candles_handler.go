// Package handler provides the HTTP handlers for the candles feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
	"github.com/Minji827/invest/internal/feature/candles/transport/http/dto"
	"github.com/Minji827/invest/internal/shared/api"
)

// CandlesUsecase defines the series-resolution operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler).
type CandlesUsecase interface {
	Resolve(ctx context.Context, symbol, period string) ([]entity.Candle, error)
}

// CandlesHandler serves historical candle data over HTTP.
type CandlesHandler struct {
	uc CandlesUsecase
}

// NewCandlesHandler creates a CandlesHandler with the given usecase.
func NewCandlesHandler(uc CandlesUsecase) *CandlesHandler {
	return &CandlesHandler{uc: uc}
}

// Historical returns the resolved daily series for a ticker.
//
// Example:
// GET /api/stock/historical?ticker=AAPL&period=1y
func (h *CandlesHandler) Historical(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		c.JSON(http.StatusBadRequest, api.Fail("ticker is required"))
		return
	}
	period := c.DefaultQuery("period", "1y")

	series, err := h.uc.Resolve(c.Request.Context(), ticker, period)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, api.OK(gin.H{
		"ticker":  ticker,
		"period":  period,
		"candles": dto.FromCandles(series),
	}))
}
