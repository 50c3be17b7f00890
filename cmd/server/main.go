package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/Minji827/invest/internal/app/di"
	"github.com/Minji827/invest/internal/app/router"
	analysishandler "github.com/Minji827/invest/internal/feature/analysis/transport/handler"
	analysisusecase "github.com/Minji827/invest/internal/feature/analysis/usecase"
	candleshandler "github.com/Minji827/invest/internal/feature/candles/transport/handler"
	predictionhandler "github.com/Minji827/invest/internal/feature/prediction/transport/handler"
	screenerhandler "github.com/Minji827/invest/internal/feature/screener/transport/handler"
	screenerusecase "github.com/Minji827/invest/internal/feature/screener/usecase"
	infradb "github.com/Minji827/invest/internal/platform/db"
	infraredis "github.com/Minji827/invest/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Resolution pipeline
	resolveUC := di.NewResolveUsecase(db)
	cachedResolver := di.NewCachedResolver(rdb, resolveUC)

	// Usecase
	predictUC := di.NewPredictUsecase()
	analysisUC := analysisusecase.NewAnalysisUsecase(cachedResolver, predictUC)
	// The screener walks many symbols in one request; it reads through the
	// database freshness window directly rather than the Redis layer.
	scanUC := screenerusecase.NewScanUsecase(resolveUC)

	// Handler
	candlesH := candleshandler.NewCandlesHandler(cachedResolver)
	analysisH := analysishandler.NewAnalysisHandler(analysisUC)
	predictH := predictionhandler.NewPredictHandler(analysisUC)
	screenerH := screenerhandler.NewScreenerHandler(scanUC)

	r := router.NewRouter(candlesH, analysisH, predictH, screenerH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
