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

	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
	"github.com/Minji827/invest/internal/feature/candles/transport/handler"
)

// mockCandlesUsecase is a mock implementation of the CandlesUsecase interface.
type mockCandlesUsecase struct {
	ResolveFunc func(ctx context.Context, symbol, period string) ([]entity.Candle, error)
}

func (m *mockCandlesUsecase) Resolve(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
	return m.ResolveFunc(ctx, symbol, period)
}

func TestCandlesHandler_Historical(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testDate := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		mockResolve    func(ctx context.Context, symbol, period string) ([]entity.Candle, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: explicit period",
			url:  "/api/stock/historical?ticker=AAPL&period=1mo",
			mockResolve: func(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
				assert.Equal(t, "AAPL", symbol)
				assert.Equal(t, "1mo", period)
				return []entity.Candle{
					{Symbol: "AAPL", Date: testDate, Open: 150.125, High: 155, Low: 149, Close: 154.496, Volume: 1000},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"success":true,"data":{"ticker":"AAPL","period":"1mo","candles":[
				{"date":"2025-06-02","open":150.13,"high":155,"low":149,"close":154.5,"volume":1000}
			]}}`,
		},
		{
			name: "success: default period",
			url:  "/api/stock/historical?ticker=MSFT",
			mockResolve: func(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
				assert.Equal(t, "1y", period)
				return []entity.Candle{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"data":{"ticker":"MSFT","period":"1y","candles":[]}}`,
		},
		{
			name:           "error: missing ticker",
			url:            "/api/stock/historical",
			mockResolve:    nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"ticker is required"}`,
		},
		{
			name: "error: resolution fails",
			url:  "/api/stock/historical?ticker=AAPL",
			mockResolve: func(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
				return nil, errors.New("store unavailable")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"success":false,"error":"store unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewCandlesHandler(&mockCandlesUsecase{ResolveFunc: tt.mockResolve})

			router := gin.New()
			router.GET("/api/stock/historical", h.Historical)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
