package db

import (
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	candleadapters "github.com/Minji827/invest/internal/feature/candles/adapters"
)

// OpenDB opens the candle database. SQLite is the default; set
// DB_DRIVER=postgres and POSTGRES_DSN to run against PostgreSQL instead.
func OpenDB() *gorm.DB {
	dialector := dialectorFromEnv()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&candleadapters.StockModel{},
			&candleadapters.BarModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

func dialectorFromEnv() gorm.Dialector {
	if os.Getenv("DB_DRIVER") == "postgres" {
		// Connect through pgx's database/sql driver so the connection
		// honors pgx DSN options (sslmode, pool settings).
		conn, err := sql.Open("pgx", os.Getenv("POSTGRES_DSN"))
		if err != nil {
			log.Fatalf("failed to open postgres connection: %v", err)
		}
		return gpostgres.New(gpostgres.Config{Conn: conn})
	}
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "invest.db"
	}
	return gsqlite.Open(path)
}
