package indicator

import "math"

// SMA computes the simple moving average over the given window. Cells before
// the window is full are NaN.
func SMA(closes []float64, window int) []float64 {
	return rollingMean(closes, window, window)
}

// EMA computes the exponential moving average with smoothing factor
// 2/(window+1), seeded by the first observed value. There is no warm-up gap:
// every point from the first onward has a defined value.
func EMA(vals []float64, window int) []float64 {
	out := make([]float64, len(vals))
	if len(vals) == 0 {
		return out
	}
	alpha := 2.0 / (float64(window) + 1.0)
	out[0] = vals[0]
	for i := 1; i < len(vals); i++ {
		out[i] = alpha*vals[i] + (1-alpha)*out[i-1]
	}
	return out
}

// PercentChange returns the percent change between the first and last value
// of the slice. ok is false with fewer than two values or a zero start.
func PercentChange(vals []float64) (pct float64, ok bool) {
	if len(vals) < 2 || vals[0] == 0 || math.IsNaN(vals[0]) || math.IsNaN(vals[len(vals)-1]) {
		return 0, false
	}
	return (vals[len(vals)-1] - vals[0]) / vals[0] * 100, true
}
