package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	analysishandler "github.com/Minji827/invest/internal/feature/analysis/transport/handler"
	candleshandler "github.com/Minji827/invest/internal/feature/candles/transport/handler"
	predictionhandler "github.com/Minji827/invest/internal/feature/prediction/transport/handler"
	screenerhandler "github.com/Minji827/invest/internal/feature/screener/transport/handler"
	platformhandler "github.com/Minji827/invest/internal/platform/http/handler"
)

// NewRouter wires every handler onto the gin engine.
func NewRouter(candles *candleshandler.CandlesHandler, analysis *analysishandler.AnalysisHandler,
	predict *predictionhandler.PredictHandler, screener *screenerhandler.ScreenerHandler) *gin.Engine {

	r := gin.Default()
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", platformhandler.Health)

	stock := r.Group("/api/stock")
	{
		stock.GET("/historical", candles.Historical)
		stock.GET("/indicators", analysis.Indicators)
		stock.GET("/levels", analysis.Levels)
		stock.GET("/recommendation", analysis.Recommendation)
		stock.POST("/predict", predict.Predict)
	}

	r.GET("/api/screener/volatility", screener.Volatility)

	return r
}
