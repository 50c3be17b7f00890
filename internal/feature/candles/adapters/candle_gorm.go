// Package adapters provides persistence implementations for the candles
// feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
	"github.com/Minji827/invest/internal/feature/candles/usecase"
)

type candleGorm struct {
	db  *gorm.DB
	now func() time.Time
}

var _ usecase.CandleStore = (*candleGorm)(nil)

// NewCandleStore creates the gorm-backed candle store.
func NewCandleStore(db *gorm.DB) *candleGorm {
	return &candleGorm{db: db, now: time.Now}
}

// StockModel tracks per-symbol freshness. LastRefreshed is nil until the
// first successful write for the symbol.
type StockModel struct {
	ID            uint   `gorm:"primaryKey"`
	Symbol        string `gorm:"size:32;not null;uniqueIndex"`
	LastRefreshed *time.Time
}

func (StockModel) TableName() string {
	return "stocks"
}

// BarModel is one canonical daily bar, unique per (symbol, date).
type BarModel struct {
	ID     uint      `gorm:"primaryKey"`
	Symbol string    `gorm:"size:32;not null;uniqueIndex:bar_sym_date,priority:1"`
	Date   time.Time `gorm:"not null;uniqueIndex:bar_sym_date,priority:2"`

	Open   float64 `gorm:"not null"`
	High   float64 `gorm:"not null"`
	Low    float64 `gorm:"not null"`
	Close  float64 `gorm:"not null"`
	Volume int64   `gorm:"not null;default:0"`
}

func (BarModel) TableName() string {
	return "bars"
}

func toModel(e entity.Candle) BarModel {
	return BarModel{
		Symbol: e.Symbol,
		Date:   e.Date,
		Open:   e.Open,
		High:   e.High,
		Low:    e.Low,
		Close:  e.Close,
		Volume: e.Volume,
	}
}

// Read returns the stored series for symbol limited to the lookback window.
// It returns a nil slice when the symbol is unknown, when the entry is older
// than the freshness window, or when no stored bar falls inside
// [now - lookbackDays, now] even though the entry itself is fresh.
func (r *candleGorm) Read(ctx context.Context, symbol string, lookbackDays int) ([]entity.Candle, error) {
	var stock StockModel
	err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	now := r.now()
	if stock.LastRefreshed == nil || now.Sub(*stock.LastRefreshed) >= usecase.FreshnessWindow {
		return nil, nil
	}

	cutoff := entity.Day(now.AddDate(0, 0, -lookbackDays))

	var rows []BarModel
	if err := r.db.WithContext(ctx).
		Where("symbol = ? AND date >= ?", symbol, cutoff).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	out := make([]entity.Candle, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Candle{
			Symbol: m.Symbol,
			Date:   m.Date.UTC(),
			Open:   m.Open,
			High:   m.High,
			Low:    m.Low,
			Close:  m.Close,
			Volume: m.Volume,
		})
	}
	return out, nil
}

// Write upserts bars keyed by (symbol, date) and stamps the symbol's
// LastRefreshed, all inside one transaction so the freshness timestamp can
// never advance without the rows it describes.
func (r *candleGorm) Write(ctx context.Context, symbol string, bars []entity.Candle) error {
	if len(bars) == 0 {
		return nil
	}

	ms := make([]BarModel, 0, len(bars))
	for _, b := range bars {
		b.Symbol = symbol
		ms = append(ms, toModel(b))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stock StockModel
		if err := tx.Where(StockModel{Symbol: symbol}).FirstOrCreate(&stock).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "symbol"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume"}),
		}).Create(&ms).Error; err != nil {
			return err
		}

		now := r.now()
		return tx.Model(&StockModel{}).
			Where("symbol = ?", symbol).
			Update("last_refreshed", &now).Error
	})
}
