package indicator

import "math"

// RSI computes the Relative Strength Index over the given period.
//
// Per-step delta is close[t]-close[t-1]; gains and losses are averaged with a
// rolling mean of the period with a minimum window of one sample, so early
// points use fewer samples instead of being undefined. Only the very first
// point, which has no delta, is NaN. When the average loss is zero RS is
// infinite and RSI resolves to exactly 100.
func RSI(closes []float64, period int) []float64 {
	n := len(closes)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	gains := make([]float64, n)
	losses := make([]float64, n)
	gains[0] = math.NaN()
	losses[0] = math.NaN()
	for i := 1; i < n; i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		}
		if delta < 0 {
			losses[i] = -delta
		}
	}

	avgGain := rollingMean(gains, period, 1)
	avgLoss := rollingMean(losses, period, 1)

	for i := 0; i < n; i++ {
		switch {
		case math.IsNaN(avgGain[i]) || math.IsNaN(avgLoss[i]):
			out[i] = math.NaN()
		case avgLoss[i] == 0:
			// division by zero handled explicitly, not propagated as NaN
			out[i] = 100
		default:
			rs := avgGain[i] / avgLoss[i]
			out[i] = 100 - 100/(1+rs)
		}
	}
	return out
}
