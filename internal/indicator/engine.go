// Package indicator computes technical indicators over normalized time
// series. All functions are pure: no I/O, no state between calls, always a
// full recompute over the whole series.
package indicator

import (
	"fmt"

	"FolioSentry/internal/model"
)

// Default periods for the fixed indicator battery.
const (
	SMAWindow       = 20
	EMAWindow       = 20
	RSIPeriod       = 14
	MACDFast        = 12
	MACDSlow        = 26
	MACDSignal      = 9
	BollingerWindow = 20
	BollingerK      = 2.0
	ATRPeriod       = 14
)

// Column names of the produced IndicatorSet.
var (
	ColSMA           = fmt.Sprintf("SMA_%d", SMAWindow)
	ColEMA           = fmt.Sprintf("EMA_%d", EMAWindow)
	ColRSI           = fmt.Sprintf("RSI_%d", RSIPeriod)
	ColMACDLine      = "MACD_line"
	ColMACDSignal    = "MACD_signal"
	ColMACDHistogram = "MACD_histogram"
	ColBollMiddle    = "Bollinger_Middle"
	ColBollUpper     = "Bollinger_Upper"
	ColBollLower     = "Bollinger_Lower"
	ColATR           = fmt.Sprintf("ATR_%d", ATRPeriod)
)

// Compute runs the full indicator battery over a normalized series and
// returns the columns aligned 1:1 with the series index.
//
// ATR needs high/low data, which crypto series don't carry; when either
// column is absent the indicator is skipped and omitted from the set rather
// than failing. An empty series yields ErrNoData.
func Compute(s *model.TimeSeries) (model.IndicatorSet, error) {
	if s == nil || s.Len() == 0 {
		return nil, model.ErrNoData
	}
	closes := s.Closes()

	set := model.IndicatorSet{
		ColSMA: SMA(closes, SMAWindow),
		ColEMA: EMA(closes, EMAWindow),
		ColRSI: RSI(closes, RSIPeriod),
	}

	line, signal, histogram := MACD(closes, MACDFast, MACDSlow, MACDSignal)
	set[ColMACDLine] = line
	set[ColMACDSignal] = signal
	set[ColMACDHistogram] = histogram

	middle, upper, lower := Bollinger(closes, BollingerWindow, BollingerK)
	set[ColBollMiddle] = middle
	set[ColBollUpper] = upper
	set[ColBollLower] = lower

	highs, okHigh := s.Column(model.FieldHigh)
	lows, okLow := s.Column(model.FieldLow)
	if okHigh && okLow {
		set[ColATR] = ATR(highs, lows, closes, ATRPeriod)
	}

	return set, nil
}
