// Package yahoo provides a candle source backed by the Yahoo Finance v8
// chart API.
package yahoo

import (
	"os"
	"time"
)

// Config holds configuration for the Yahoo Finance chart client.
type Config struct {
	BaseURL string        // Base URL (e.g., "https://query1.finance.yahoo.com")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Yahoo Finance configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("YAHOO_BASE_URL")
	if base == "" {
		base = "https://query1.finance.yahoo.com"
	}
	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
