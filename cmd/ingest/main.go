package main

import (
	"context"
	"log"
	"time"

	"github.com/Minji827/invest/internal/app/di"
	"github.com/Minji827/invest/internal/platform/db"
	"github.com/Minji827/invest/internal/shared/ratelimiter"
)

// popularTickers is the warm-up set resolved ahead of market open so first
// requests hit the database instead of racing upstream providers.
var popularTickers = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA",
	"META", "TSLA", "AMD", "NFLX", "INTC",
}

func main() {
	gdb := db.OpenDB()
	uc := di.NewResolveUsecase(gdb)

	// Upstream providers rate limit aggressively on free tiers.
	limiter := ratelimiter.NewRateLimiter(30, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	for _, symbol := range popularTickers {
		limiter.WaitIfNeeded()
		series, err := uc.Resolve(ctx, symbol, "5y")
		if err != nil {
			log.Printf("warm-up failed for %s: %v", symbol, err)
			continue
		}
		log.Printf("warmed %s: %d bars", symbol, len(series))
	}
	log.Println("ingest ok")
}
