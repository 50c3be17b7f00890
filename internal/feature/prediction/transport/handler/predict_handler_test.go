package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	analysisdomain "github.com/Minji827/invest/internal/feature/analysis/domain"
	"github.com/Minji827/invest/internal/feature/prediction/domain"
	"github.com/Minji827/invest/internal/feature/prediction/domain/entity"
	"github.com/Minji827/invest/internal/feature/prediction/transport/handler"
)

// mockForecastUsecase is a mock implementation of the ForecastUsecase interface.
type mockForecastUsecase struct {
	FeatureVectorFunc func(ctx context.Context, symbol string) ([entity.FeatureCount]float64, float64, error)
}

func (m *mockForecastUsecase) FeatureVector(ctx context.Context, symbol string) ([entity.FeatureCount]float64, float64, error) {
	return m.FeatureVectorFunc(ctx, symbol)
}

func TestPredictHandler_Predict(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		mockFn         func(ctx context.Context, symbol string) ([entity.FeatureCount]float64, float64, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"ticker":"AAPL"}`,
			mockFn: func(ctx context.Context, symbol string) ([entity.FeatureCount]float64, float64, error) {
				assert.Equal(t, "AAPL", symbol)
				return [entity.FeatureCount]float64{55, 0.5, 0.1, 0.02, 0.01, 0.03, 1.2, 3.5}, -2.75, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"success":true,"data":{
				"ticker":"AAPL",
				"predicted_change_percent":-2.75,
				"features":[55,0.5,0.1,0.02,0.01,0.03,1.2,3.5]
			}}`,
		},
		{
			name:           "error: missing ticker",
			body:           `{}`,
			mockFn:         nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"ticker is required"}`,
		},
		{
			name: "error: model not trained",
			body: `{"ticker":"OBSCURE"}`,
			mockFn: func(ctx context.Context, symbol string) ([entity.FeatureCount]float64, float64, error) {
				return [entity.FeatureCount]float64{}, 0, domain.ErrModelNotTrained
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"success":false,"error":"model not trained for symbol"}`,
		},
		{
			name: "error: insufficient history",
			body: `{"ticker":"NEW"}`,
			mockFn: func(ctx context.Context, symbol string) ([entity.FeatureCount]float64, float64, error) {
				return [entity.FeatureCount]float64{}, 0, analysisdomain.ErrInsufficientHistory
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"success":false,"error":"not enough historical data"}`,
		},
		{
			name: "error: resolution failure",
			body: `{"ticker":"AAPL"}`,
			mockFn: func(ctx context.Context, symbol string) ([entity.FeatureCount]float64, float64, error) {
				return [entity.FeatureCount]float64{}, 0, errors.New("store unavailable")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"success":false,"error":"store unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewPredictHandler(&mockForecastUsecase{FeatureVectorFunc: tt.mockFn})

			router := gin.New()
			router.POST("/api/stock/predict", h.Predict)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/api/stock/predict", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
