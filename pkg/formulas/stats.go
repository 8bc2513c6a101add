package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// WinRate calculates the percentage of values that are strictly positive.
// Returns 0 for an empty slice.
func WinRate(pnls []float64) float64 {
	if len(pnls) == 0 {
		return 0
	}

	wins := 0
	for _, p := range pnls {
		if p > 0 {
			wins++
		}
	}

	return float64(wins) / float64(len(pnls)) * 100
}

// MaxDrawdown calculates the maximum peak-to-trough decline of an equity
// series, as a positive fraction (0.25 = 25% loss from peak).
// Returns 0 when the series has fewer than two points.
func MaxDrawdown(equity []float64) float64 {
	if len(equity) < 2 {
		return 0
	}

	maxDrawdown := 0.0
	peak := equity[0]

	for _, value := range equity {
		if value > peak {
			peak = value
		}

		if peak > 0 {
			drawdown := (peak - value) / peak
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}

	return maxDrawdown
}

// Round2 rounds a value to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
