// Package alphavantage provides a candle source backed by the Alpha Vantage
// TIME_SERIES_DAILY API.
package alphavantage

import (
	"os"
	"time"
)

// Config holds configuration for the Alpha Vantage API client. The client is
// disabled when the key is missing or left at the public "demo" placeholder,
// because the demo key only serves canned data for a handful of symbols.
type Config struct {
	APIKey  string        // API key; empty or "demo" disables the source
	BaseURL string        // Base URL (e.g., "https://www.alphavantage.co/query")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Alpha Vantage configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("ALPHA_VANTAGE_BASE_URL")
	if base == "" {
		base = "https://www.alphavantage.co/query"
	}
	return Config{
		APIKey:  os.Getenv("ALPHA_VANTAGE_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}

// Disabled reports whether the source should short-circuit without any
// network call.
func (c Config) Disabled() bool {
	return c.APIKey == "" || c.APIKey == "demo"
}
