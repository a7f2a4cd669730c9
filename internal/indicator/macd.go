package indicator

// MACD computes the Moving Average Convergence Divergence triple:
// line = EMA(fast) - EMA(slow), signal = EMA(signalPeriod) of the line,
// histogram = line - signal.
func MACD(closes []float64, fast, slow, signalPeriod int) (line, signal, histogram []float64) {
	emaFast := EMA(closes, fast)
	emaSlow := EMA(closes, slow)

	line = make([]float64, len(closes))
	for i := range closes {
		line[i] = emaFast[i] - emaSlow[i]
	}

	signal = EMA(line, signalPeriod)

	histogram = make([]float64, len(closes))
	for i := range closes {
		histogram[i] = line[i] - signal[i]
	}
	return line, signal, histogram
}
