package model

import (
	"errors"
	"fmt"
)

// ErrNoData marks an operation that found zero usable input: an empty price
// series, or a weekly window with nothing in it. Callers render it ("No data
// available.") or skip, they never treat it as fatal.
var ErrNoData = errors.New("no data available")

// SchemaError reports raw provider data whose shape cannot be normalized,
// e.g. no recognizable timestamp or price column. It is per-asset and
// non-fatal to the batch.
type SchemaError struct {
	Asset  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error for %s: %s", e.Asset, e.Reason)
}
