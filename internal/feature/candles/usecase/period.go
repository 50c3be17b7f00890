package usecase

// Supported chart periods, mirroring the lookback buckets providers accept.
const (
	Period1Month  = "1mo"
	Period3Months = "3mo"
	Period6Months = "6mo"
	Period1Year   = "1y"
	Period5Years  = "5y"
	PeriodMax     = "max"
)

// periodDays maps a period name to its lookback in calendar days.
var periodDays = map[string]int{
	Period1Month:  30,
	Period3Months: 90,
	Period6Months: 180,
	Period1Year:   365,
	Period5Years:  1825,
	PeriodMax:     3650,
}

// PeriodToDays converts a period name to a day count. Unknown names fall
// back to one year, matching the behavior callers already rely on.
func PeriodToDays(period string) int {
	if d, ok := periodDays[period]; ok {
		return d
	}
	return periodDays[Period1Year]
}
