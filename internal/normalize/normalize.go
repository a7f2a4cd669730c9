// Package normalize is the single translation boundary between provider row
// shapes and the canonical TimeSeries. No other component branches on asset
// class or provider field names.
package normalize

import (
	"sort"
	"time"

	"FolioSentry/internal/model"
)

// Accepted timestamp field names, in lookup order. Equity rows from Yahoo
// carry "Date", crypto rows from CoinGecko carry "datetime".
var timestampFields = []string{"Date", "date", "datetime", "timestamp", "time"}

// price field per asset class
var priceFields = map[model.AssetClass][]string{
	model.ClassEquity: {"Close", "close"},
	model.ClassCrypto: {"price"},
}

// pass-through fields mapped to their canonical names
var carryFields = map[string]string{
	"High":       model.FieldHigh,
	"high":       model.FieldHigh,
	"Low":        model.FieldLow,
	"low":        model.FieldLow,
	"Volume":     model.FieldVolume,
	"volume":     model.FieldVolume,
	"market_cap": model.FieldMarketCap,
}

// Normalize maps heterogeneous raw provider rows into a canonical series:
// one price field named "close", ascending timestamps, duplicate timestamps
// resolved by keeping the last occurrence. Points without a positive close
// are dropped.
//
// It fails with a *model.SchemaError when no recognizable timestamp or price
// field exists, and with model.ErrNoData when no usable point survives.
// Pure transform; persistence is the caller's concern.
func Normalize(asset string, class model.AssetClass, rows []map[string]any) (*model.TimeSeries, error) {
	if len(rows) == 0 {
		return nil, model.ErrNoData
	}
	tsField, ok := detectField(rows, timestampFields)
	if !ok {
		return nil, &model.SchemaError{Asset: asset, Reason: "no recognized timestamp field"}
	}
	priceField, ok := detectField(rows, priceFields[class])
	if !ok {
		return nil, &model.SchemaError{Asset: asset, Reason: "no recognized price field for class " + string(class)}
	}

	byTime := make(map[int64]model.Point, len(rows))
	order := make([]int64, 0, len(rows))
	for _, row := range rows {
		ts, ok := rowTime(row[tsField])
		if !ok {
			continue
		}
		price, ok := rowFloat(row[priceField])
		if !ok || price <= 0 {
			continue
		}
		fields := map[string]float64{model.FieldClose: price}
		for raw, canonical := range carryFields {
			if v, present := row[raw]; present {
				if f, ok := rowFloat(v); ok {
					fields[canonical] = f
				}
			}
		}
		key := ts.UnixNano()
		if _, seen := byTime[key]; !seen {
			order = append(order, key)
		}
		// later write wins on duplicate timestamps
		byTime[key] = model.Point{Time: ts, Fields: fields}
	}

	if len(order) == 0 {
		return nil, model.ErrNoData
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	points := make([]model.Point, len(order))
	for i, key := range order {
		points[i] = byTime[key]
	}

	return &model.TimeSeries{Asset: asset, Class: class, Points: points}, nil
}

func detectField(rows []map[string]any, candidates []string) (string, bool) {
	for _, name := range candidates {
		for _, row := range rows {
			if _, ok := row[name]; ok {
				return name, true
			}
		}
	}
	return "", false
}

func rowTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range []string{time.RFC3339, model.DateLayout} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

func rowFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
