package indicator

import "math"

// Bollinger computes the volatility envelope: middle is the rolling mean of
// the window (minimum one sample), the bands sit k rolling sample standard
// deviations above and below it. The first point has a middle but no bands,
// since one sample has no sample deviation.
func Bollinger(closes []float64, window int, k float64) (middle, upper, lower []float64) {
	middle = rollingMean(closes, window, 1)
	std := rollingStd(closes, window, 1)

	upper = make([]float64, len(closes))
	lower = make([]float64, len(closes))
	for i := range closes {
		if math.IsNaN(std[i]) {
			upper[i] = math.NaN()
			lower[i] = math.NaN()
			continue
		}
		width := k * std[i]
		upper[i] = middle[i] + width
		lower[i] = middle[i] - width
	}
	return middle, upper, lower
}
