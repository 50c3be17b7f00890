// Package entity defines the domain models for the volatility screener.
package entity

import "time"

// Move direction labels.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// VolatilityAlert flags one symbol whose latest close-to-close move cleared
// the screening threshold. This is a heuristic watch, not a regulatory
// limit-up/limit-down replication.
type VolatilityAlert struct {
	Symbol        string
	Date          time.Time
	Close         float64
	PrevClose     float64
	ChangePercent float64
	Direction     string
}
