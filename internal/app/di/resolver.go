package di

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	candlesadapters "github.com/Minji827/invest/internal/feature/candles/adapters"
	candlesusecase "github.com/Minji827/invest/internal/feature/candles/usecase"
	predictionadapters "github.com/Minji827/invest/internal/feature/prediction/adapters"
	predictionusecase "github.com/Minji827/invest/internal/feature/prediction/usecase"
	"github.com/Minji827/invest/internal/platform/cache"
)

// seriesCacheTTL is how long resolved series stay in Redis. The database
// freshness window is the durable cache; this layer only absorbs request
// bursts.
const seriesCacheTTL = 5 * time.Minute

// NewResolveUsecase creates the cache-aside resolution orchestrator backed
// by the gorm candle store and the source racer.
func NewResolveUsecase(db *gorm.DB) *candlesusecase.ResolveUsecase {
	store := candlesadapters.NewCandleStore(db)
	return candlesusecase.NewResolveUsecase(store, NewRacer())
}

// NewCachedResolver wraps the resolution orchestrator with the Redis series
// cache. With a nil client the decorator passes straight through.
func NewCachedResolver(rdb *redis.Client, inner *candlesusecase.ResolveUsecase) *cache.CachingSeriesResolver {
	return cache.NewCachingSeriesResolver(rdb, seriesCacheTTL, inner, "series")
}

// NewPredictUsecase creates the dip-prediction usecase over the JSON model
// artifact store. MODEL_DIR defaults to "models".
func NewPredictUsecase() *predictionusecase.PredictUsecase {
	dir := os.Getenv("MODEL_DIR")
	if dir == "" {
		dir = "models"
	}
	return predictionusecase.NewPredictUsecase(predictionadapters.NewArtifactStore(dir))
}
