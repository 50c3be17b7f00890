package usecase

import (
	"github.com/Minji827/invest/internal/feature/candles/domain/entity"
)

// DefaultLevelWindow is the peak-separation window used when the caller
// does not specify one.
const DefaultLevelWindow = 20

// prominenceFactor scales the stddev of the level column into the minimum
// peak prominence.
const prominenceFactor = 0.5

// DetectLevels extracts support and resistance price levels from a series.
// Resistances are local maxima of the highs with a minimum separation of
// window/2 bars and a minimum prominence of 0.5 x stddev(highs); supports
// are found symmetrically on the negated lows. Both results hold raw level
// values, not indices, and either may be empty.
func DetectLevels(series []entity.Candle, window int) (supports, resistances []float64) {
	if window <= 0 {
		window = DefaultLevelWindow
	}
	distance := window / 2
	if distance < 1 {
		distance = 1
	}

	highs := entity.Highs(series)
	lows := entity.Lows(series)

	for _, i := range findPeaks(highs, distance, prominenceFactor*popStddev(highs)) {
		resistances = append(resistances, highs[i])
	}

	negated := make([]float64, len(lows))
	for i, v := range lows {
		negated[i] = -v
	}
	for _, i := range findPeaks(negated, distance, prominenceFactor*popStddev(lows)) {
		supports = append(supports, lows[i])
	}
	return supports, resistances
}

// findPeaks returns the indices of interior local maxima that clear the
// minimum prominence, thinned so no two survivors sit closer than distance
// bars (higher peaks win the thinning). Indices come back in ascending
// order. A strictly monotonic input has no interior maximum and yields nil.
func findPeaks(values []float64, distance int, minProminence float64) []int {
	var candidates []int
	for i := 1; i < len(values)-1; i++ {
		if values[i] > values[i-1] && values[i] > values[i+1] {
			if peakProminence(values, i) >= minProminence {
				candidates = append(candidates, i)
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	// Thin by separation, highest peaks first.
	order := make([]int, len(candidates))
	copy(order, candidates)
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && values[order[j]] > values[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	kept := make([]bool, len(values))
	var peaks []int
	for _, idx := range order {
		tooClose := false
		for _, p := range peaks {
			if abs(idx-p) < distance {
				tooClose = true
				break
			}
		}
		if !tooClose {
			peaks = append(peaks, idx)
			kept[idx] = true
		}
	}

	out := make([]int, 0, len(peaks))
	for i := range values {
		if kept[i] {
			out = append(out, i)
		}
	}
	return out
}

// peakProminence measures how far a peak rises above the higher of the two
// valley floors between it and the nearest taller sample on each side (or
// the series edge when none exists).
func peakProminence(values []float64, peak int) float64 {
	leftMin := values[peak]
	for i := peak - 1; i >= 0; i-- {
		if values[i] > values[peak] {
			break
		}
		if values[i] < leftMin {
			leftMin = values[i]
		}
	}

	rightMin := values[peak]
	for i := peak + 1; i < len(values); i++ {
		if values[i] > values[peak] {
			break
		}
		if values[i] < rightMin {
			rightMin = values[i]
		}
	}

	base := leftMin
	if rightMin > base {
		base = rightMin
	}
	return values[peak] - base
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
