package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Minji827/invest/internal/feature/screener/domain/entity"
	"github.com/Minji827/invest/internal/feature/screener/transport/handler"
)

// mockScreenerUsecase is a mock implementation of the ScreenerUsecase interface.
type mockScreenerUsecase struct {
	ScanFunc func(ctx context.Context, symbols []string, thresholdPercent float64) ([]entity.VolatilityAlert, error)
}

func (m *mockScreenerUsecase) Scan(ctx context.Context, symbols []string, thresholdPercent float64) ([]entity.VolatilityAlert, error) {
	return m.ScanFunc(ctx, symbols, thresholdPercent)
}

func TestScreenerHandler_Volatility(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testDate := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		mockScan       func(ctx context.Context, symbols []string, thresholdPercent float64) ([]entity.VolatilityAlert, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: trimmed symbol list and custom threshold",
			url:  "/api/screener/volatility?symbols=AAPL,%20MSFT,,NVDA&threshold=7.5",
			mockScan: func(ctx context.Context, symbols []string, thresholdPercent float64) ([]entity.VolatilityAlert, error) {
				assert.Equal(t, []string{"AAPL", "MSFT", "NVDA"}, symbols)
				assert.Equal(t, 7.5, thresholdPercent)
				return []entity.VolatilityAlert{
					{Symbol: "NVDA", Date: testDate, Close: 432.109, PrevClose: 480.0, ChangePercent: -9.977, Direction: entity.DirectionDown},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"success":true,"data":{"threshold":7.5,"scanned":3,"alerts":[
				{"symbol":"NVDA","date":"2025-06-02","close":432.11,"prev_close":480,"change_percent":-9.98,"direction":"down"}
			]}}`,
		},
		{
			name: "success: default threshold, no alerts",
			url:  "/api/screener/volatility?symbols=AAPL",
			mockScan: func(ctx context.Context, symbols []string, thresholdPercent float64) ([]entity.VolatilityAlert, error) {
				assert.Equal(t, 5.0, thresholdPercent)
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"data":{"threshold":5,"scanned":1,"alerts":[]}}`,
		},
		{
			name:           "error: missing symbols",
			url:            "/api/screener/volatility",
			mockScan:       nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"symbols is required"}`,
		},
		{
			name: "error: scan fails",
			url:  "/api/screener/volatility?symbols=AAPL",
			mockScan: func(ctx context.Context, symbols []string, thresholdPercent float64) ([]entity.VolatilityAlert, error) {
				return nil, errors.New("scan aborted")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"success":false,"error":"scan aborted"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewScreenerHandler(&mockScreenerUsecase{ScanFunc: tt.mockScan})

			router := gin.New()
			router.GET("/api/screener/volatility", h.Volatility)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
