// Package dto defines the HTTP shapes for the screener feature.
package dto

import (
	candledto "github.com/Minji827/invest/internal/feature/candles/transport/http/dto"
	"github.com/Minji827/invest/internal/feature/screener/domain/entity"
)

// AlertResponse is one volatility alert in API form.
type AlertResponse struct {
	Symbol        string  `json:"symbol"`
	Date          string  `json:"date"`
	Close         float64 `json:"close"`
	PrevClose     float64 `json:"prev_close"`
	ChangePercent float64 `json:"change_percent"`
	Direction     string  `json:"direction"`
}

// FromAlerts converts scan results to response form.
func FromAlerts(alerts []entity.VolatilityAlert) []AlertResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, AlertResponse{
			Symbol:        a.Symbol,
			Date:          a.Date.UTC().Format("2006-01-02"),
			Close:         candledto.Round2(a.Close),
			PrevClose:     candledto.Round2(a.PrevClose),
			ChangePercent: candledto.Round2(a.ChangePercent),
			Direction:     a.Direction,
		})
	}
	return out
}
