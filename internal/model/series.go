package model

import "time"

// AssetClass tags a series with its origin market. It is attached once at
// normalization time and carried forward, so no downstream component has to
// re-derive it from portfolio membership.
type AssetClass string

const (
	ClassEquity AssetClass = "equity"
	ClassCrypto AssetClass = "crypto"
)

// Canonical field names exposed by a normalized series.
const (
	FieldClose     = "close"
	FieldHigh      = "high"
	FieldLow       = "low"
	FieldVolume    = "volume"
	FieldMarketCap = "market_cap"
)

// Point is a single observation in a time series.
type Point struct {
	Time   time.Time
	Fields map[string]float64
}

// TimeSeries is an ordered sequence of points, strictly increasing by
// timestamp. After normalization every series exposes FieldClose regardless
// of whether it came from an equity or a crypto provider.
type TimeSeries struct {
	Asset  string
	Class  AssetClass
	Points []Point
}

// Len returns the number of points in the series.
func (s *TimeSeries) Len() int { return len(s.Points) }

// Closes extracts the close column.
func (s *TimeSeries) Closes() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Fields[FieldClose]
	}
	return out
}

// Column extracts an arbitrary field column. ok is false if any point is
// missing the field.
func (s *TimeSeries) Column(field string) (vals []float64, ok bool) {
	vals = make([]float64, len(s.Points))
	for i, p := range s.Points {
		v, present := p.Fields[field]
		if !present {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}

// IndicatorSet maps an indicator column name (e.g. "SMA_20", "RSI_14") to its
// per-timestamp values, aligned 1:1 with the source series index. Cells that
// are undefined during an indicator's warm-up are NaN. An IndicatorSet is
// never mutated after creation; recomputation always runs on the full series.
type IndicatorSet map[string][]float64

// Latest returns the last value of the named column, or false if the column
// is absent or empty.
func (is IndicatorSet) Latest(name string) (float64, bool) {
	col, ok := is[name]
	if !ok || len(col) == 0 {
		return 0, false
	}
	return col[len(col)-1], true
}
