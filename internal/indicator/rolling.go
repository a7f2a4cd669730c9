package indicator

import "math"

// Rolling-window statistics over float64 columns. NaN cells are treated as
// missing: they never contribute to a window, and a window with fewer than
// minPeriods usable samples yields NaN.

func rollingMean(vals []float64, window, minPeriods int) []float64 {
	out := make([]float64, len(vals))
	for i := range vals {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		sum, n := 0.0, 0
		for j := start; j <= i; j++ {
			if math.IsNaN(vals[j]) {
				continue
			}
			sum += vals[j]
			n++
		}
		if n < minPeriods {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(n)
	}
	return out
}

// rollingStd is the rolling sample standard deviation (n-1 denominator).
// A window with a single usable sample has no sample deviation and yields
// NaN even when minPeriods is 1.
func rollingStd(vals []float64, window, minPeriods int) []float64 {
	out := make([]float64, len(vals))
	for i := range vals {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		sum, n := 0.0, 0
		for j := start; j <= i; j++ {
			if math.IsNaN(vals[j]) {
				continue
			}
			sum += vals[j]
			n++
		}
		if n < minPeriods || n < 2 {
			out[i] = math.NaN()
			continue
		}
		mean := sum / float64(n)
		var ss float64
		for j := start; j <= i; j++ {
			if math.IsNaN(vals[j]) {
				continue
			}
			d := vals[j] - mean
			ss += d * d
		}
		out[i] = math.Sqrt(ss / float64(n-1))
	}
	return out
}
