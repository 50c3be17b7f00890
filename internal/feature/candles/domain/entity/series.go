package entity

import "sort"

// NormalizeDaily converts raw provider bars into a canonical symbol series:
// the symbol is stamped on every bar, dates are truncated to calendar days,
// duplicate days collapse to the last bar seen, and the result is sorted
// ascending by date.
func NormalizeDaily(symbol string, bars []Candle) []Candle {
	if len(bars) == 0 {
		return nil
	}
	byDay := make(map[int64]Candle, len(bars))
	for _, b := range bars {
		b.Symbol = symbol
		b.Date = Day(b.Date)
		byDay[b.Date.Unix()] = b
	}
	out := make([]Candle, 0, len(byDay))
	for _, b := range byDay {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
