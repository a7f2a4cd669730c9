package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FolioSentry/internal/model"
)

func rec(date, asset string, source model.Source) model.DailySummaryRecord {
	return model.DailySummaryRecord{Date: date, Asset: asset, Source: source, Summary: "s"}
}

func TestWindowBoundaryInclusiveAtSevenDays(t *testing.T) {
	asOf := time.Date(2025, 9, 1, 15, 30, 0, 0, time.UTC)
	records := []model.DailySummaryRecord{
		rec("2025-08-25", "SEVEN", model.SourcePortfolio), // exactly 7 days back
		rec("2025-08-26", "SIX", model.SourcePortfolio),   // 6 days back
		rec("2025-08-24", "EIGHT", model.SourcePortfolio), // 8 days back
	}

	win, err := WindowRecords(records, asOf, 7)
	require.NoError(t, err)
	require.Len(t, win.Portfolio, 2)
	assert.Equal(t, "SEVEN", win.Portfolio[0].Asset)
	assert.Equal(t, "SIX", win.Portfolio[1].Asset)
}

func TestWindowPartitionsBySource(t *testing.T) {
	asOf := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	records := []model.DailySummaryRecord{
		rec("2025-08-30", "AAPL", model.SourcePortfolio),
		rec("2025-08-30", "NVDA", model.SourceWatchlist),
		rec("2025-08-31", "bitcoin", model.SourcePortfolio),
	}

	win, err := WindowRecords(records, asOf, 7)
	require.NoError(t, err)
	assert.Len(t, win.Portfolio, 2)
	assert.Len(t, win.Watchlist, 1)
}

func TestWindowSkipsUnparseableDates(t *testing.T) {
	asOf := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	records := []model.DailySummaryRecord{
		rec("not-a-date", "BAD", model.SourcePortfolio),
		rec("", "EMPTY", model.SourcePortfolio),
		rec("2025-08-31", "GOOD", model.SourcePortfolio),
	}

	win, err := WindowRecords(records, asOf, 7)
	require.NoError(t, err)
	require.Len(t, win.Portfolio, 1)
	assert.Equal(t, "GOOD", win.Portfolio[0].Asset)
}

func TestWindowDropsUnknownSource(t *testing.T) {
	asOf := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	records := []model.DailySummaryRecord{
		rec("2025-08-31", "AAPL", model.Source("mystery")),
		rec("2025-08-31", "NVDA", model.SourceWatchlist),
	}

	win, err := WindowRecords(records, asOf, 7)
	require.NoError(t, err)
	assert.Empty(t, win.Portfolio)
	assert.Len(t, win.Watchlist, 1)
}

func TestWindowEmptySignalsNoData(t *testing.T) {
	asOf := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := WindowRecords(nil, asOf, 7)
	assert.ErrorIs(t, err, model.ErrNoData)

	stale := []model.DailySummaryRecord{rec("2025-07-01", "OLD", model.SourcePortfolio)}
	_, err = WindowRecords(stale, asOf, 7)
	assert.ErrorIs(t, err, model.ErrNoData, "an all-stale store is indistinguishable from an empty week")
}
