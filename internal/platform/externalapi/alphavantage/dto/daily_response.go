// Package dto defines data transfer objects for Alpha Vantage API responses.
package dto

// DailyBar is one day's entry in the Alpha Vantage daily series. All fields
// arrive as strings.
type DailyBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// DailyResponse represents the JSON response from the TIME_SERIES_DAILY
// function. Note and Information carry rate-limit and error text when the
// series is absent.
type DailyResponse struct {
	Series      map[string]DailyBar `json:"Time Series (Daily)"`
	Note        string              `json:"Note,omitempty"`
	Information string              `json:"Information,omitempty"`
	ErrorMsg    string              `json:"Error Message,omitempty"`
}
