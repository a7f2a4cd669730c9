// Package aggregate derives trailing-window views over the daily record
// store for the weekly synthesis job.
package aggregate

import (
	"time"

	"FolioSentry/internal/model"
)

// DefaultLookbackDays is the trailing window of the weekly overview.
const DefaultLookbackDays = 7

// WindowRecords filters records to those dated on or after
// asOf - lookbackDays (the boundary is inclusive at exactly lookbackDays
// back) and partitions them by source. Records with missing or unparseable
// dates are excluded rather than failing the aggregation; records with an
// unknown source are dropped from both partitions.
//
// An empty window, or one where both partitions end up empty, returns
// model.ErrNoData so callers can tell "nothing happened this week" from a
// broken store.
func WindowRecords(records []model.DailySummaryRecord, asOf time.Time, lookbackDays int) (*model.WeeklyWindow, error) {
	// compare on calendar dates: a record dated exactly lookbackDays ago is
	// inside the window regardless of asOf's time of day
	y, m, d := asOf.Date()
	cutoff := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -lookbackDays)

	win := &model.WeeklyWindow{}
	for _, rec := range records {
		when, err := time.Parse(model.DateLayout, rec.Date)
		if err != nil {
			continue
		}
		if when.Before(cutoff) {
			continue
		}
		switch rec.Source {
		case model.SourcePortfolio:
			win.Portfolio = append(win.Portfolio, rec)
		case model.SourceWatchlist:
			win.Watchlist = append(win.Watchlist, rec)
		}
	}

	if len(win.Portfolio) == 0 && len(win.Watchlist) == 0 {
		return nil, model.ErrNoData
	}
	return win, nil
}
