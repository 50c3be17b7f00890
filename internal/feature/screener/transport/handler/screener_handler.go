// Package handler provides the HTTP handlers for the screener feature.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Minji827/invest/internal/feature/screener/domain/entity"
	"github.com/Minji827/invest/internal/feature/screener/transport/http/dto"
	"github.com/Minji827/invest/internal/shared/api"
)

// ScreenerUsecase defines the batch-scan operation the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler).
type ScreenerUsecase interface {
	Scan(ctx context.Context, symbols []string, thresholdPercent float64) ([]entity.VolatilityAlert, error)
}

// ScreenerHandler serves volatility-screen requests.
type ScreenerHandler struct {
	uc ScreenerUsecase
}

// NewScreenerHandler creates a ScreenerHandler with the given usecase.
func NewScreenerHandler(uc ScreenerUsecase) *ScreenerHandler {
	return &ScreenerHandler{uc: uc}
}

// Volatility scans a comma-separated symbol list for large single-day moves.
//
// Example:
// GET /api/screener/volatility?symbols=AAPL,MSFT,NVDA&threshold=5
func (h *ScreenerHandler) Volatility(c *gin.Context) {
	symbols := splitSymbols(c.Query("symbols"))
	if len(symbols) == 0 {
		c.JSON(http.StatusBadRequest, api.Fail("symbols is required"))
		return
	}

	threshold, _ := strconv.ParseFloat(c.DefaultQuery("threshold", "5"), 64)

	alerts, err := h.uc.Scan(c.Request.Context(), symbols, threshold)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, api.OK(gin.H{
		"threshold": threshold,
		"scanned":   len(symbols),
		"alerts":    dto.FromAlerts(alerts),
	}))
}

// splitSymbols parses the comma-separated symbols parameter, dropping empty
// entries.
func splitSymbols(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
