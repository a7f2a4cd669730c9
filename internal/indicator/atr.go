package indicator

import "math"

// ATR computes the Average True Range: the EMA of the true-range series over
// the given period. True range at t is the largest of high-low,
// |high-prevClose| and |low-prevClose|; the first point has no previous
// close, so its true range is simply high-low.
func ATR(highs, lows, closes []float64, period int) []float64 {
	n := len(closes)
	tr := make([]float64, n)
	for i := 0; i < n; i++ {
		if i == 0 {
			tr[i] = highs[i] - lows[i]
			continue
		}
		prevClose := closes[i-1]
		tr[i] = math.Max(highs[i]-lows[i],
			math.Max(math.Abs(highs[i]-prevClose), math.Abs(lows[i]-prevClose)))
	}
	return EMA(tr, period)
}
