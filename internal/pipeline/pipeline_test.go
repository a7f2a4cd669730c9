package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FolioSentry/internal/config"
	"FolioSentry/internal/model"
	"FolioSentry/internal/notifier"
	"FolioSentry/internal/recorder"
	"FolioSentry/internal/store"
)

type fakeMarket struct {
	rows map[string][]map[string]any
	errs map[string]error
}

func (f *fakeMarket) FetchHistory(_ context.Context, asset string, _ int) ([]map[string]any, error) {
	if err := f.errs[asset]; err != nil {
		return nil, err
	}
	return f.rows[asset], nil
}

func (f *fakeMarket) Name() string { return "fake" }

type fakeNews struct{}

func (fakeNews) FetchHeadlines(context.Context, string, model.AssetClass, int) ([]model.Headline, error) {
	return []model.Headline{{Title: "earnings beat", Description: "d", URL: "u"}}, nil
}

type fakeSocial struct{}

func (fakeSocial) FetchPosts(context.Context, string, int) ([]model.SocialPost, error) {
	return nil, errors.New("rate limited")
}

type fakeNarrator struct {
	calls []string
	reply string
	err   error
}

func (f *fakeNarrator) Generate(_ context.Context, _ string, prompt string, _ int) (string, error) {
	f.calls = append(f.calls, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func bars(closes ...float64) []map[string]any {
	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]map[string]any, 0, len(closes))
	for i, c := range closes {
		rows = append(rows, map[string]any{"Date": base.AddDate(0, 0, i), "Close": c})
	}
	return rows
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Portfolio.Stocks = []string{"AAPL", "MSFT"}
	cfg.Watchlist.Stocks = []string{"NVDA"}
	cfg.Analysis.LookbackDays = 30
	cfg.Analysis.HistoryDays = 365
	cfg.News.Limit = 5
	cfg.Reddit.Limit = 5
	cfg.Gemini.DailyMaxTokens = 100
	cfg.Gemini.WeeklyMaxTokens = 200
	return cfg
}

func newTestPipeline(t *testing.T, cfg *config.Config, mp *fakeMarket, n *fakeNarrator) (*Pipeline, *store.CSVStore) {
	t.Helper()
	st := store.NewCSVStore(filepath.Join(t.TempDir(), "summaries.csv"))
	tn := notifier.NewTelegramNotifier("", "", "")
	p := New(cfg, mp, mp, fakeNews{}, fakeSocial{}, n, tn, st, recorder.NewNoopRecorder())
	p.now = func() time.Time { return time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC) }
	return p, st
}

func TestRunDailyRecordsEveryAsset(t *testing.T) {
	cfg := testConfig(t)
	mp := &fakeMarket{rows: map[string][]map[string]any{
		"AAPL": bars(10, 11, 12),
		"MSFT": bars(20, 21, 19),
		"NVDA": bars(30, 31, 35),
	}}
	narr := &fakeNarrator{reply: "Hold steady."}
	p, st := newTestPipeline(t, cfg, mp, narr)

	p.RunDaily(context.Background())

	records, err := st.LoadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2025-09-01", records[0].Date)
	assert.Equal(t, "AAPL", records[0].Asset)
	assert.Equal(t, model.SourcePortfolio, records[0].Source)
	assert.Equal(t, "Hold steady.", records[0].Summary)
	assert.Equal(t, model.SourceWatchlist, records[2].Source)
	assert.Len(t, narr.calls, 3)
}

func TestRunDailySkipsFailingAssetAndContinues(t *testing.T) {
	cfg := testConfig(t)
	mp := &fakeMarket{
		rows: map[string][]map[string]any{
			"AAPL": bars(10, 11),
			"NVDA": bars(30, 31),
		},
		errs: map[string]error{"MSFT": errors.New("upstream 503")},
	}
	narr := &fakeNarrator{reply: "Trim your stake."}
	p, st := newTestPipeline(t, cfg, mp, narr)

	p.RunDaily(context.Background())

	records, err := st.LoadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "AAPL", records[0].Asset)
	assert.Equal(t, "NVDA", records[1].Asset)
}

func TestRunDailyNoDataSentinelStillRecorded(t *testing.T) {
	cfg := testConfig(t)
	cfg.Portfolio.Stocks = []string{"AAPL"}
	cfg.Watchlist.Stocks = nil
	mp := &fakeMarket{rows: map[string][]map[string]any{"AAPL": nil}}
	narr := &fakeNarrator{reply: "should not be asked"}
	p, st := newTestPipeline(t, cfg, mp, narr)

	p.RunDaily(context.Background())

	records, err := st.LoadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "No data available.", records[0].Summary)
	assert.Empty(t, narr.calls, "narrator is not consulted for an empty series")
}

func TestRunWeeklySynthesizesWindow(t *testing.T) {
	cfg := testConfig(t)
	narr := &fakeNarrator{reply: "Rotate into NVDA."}
	p, st := newTestPipeline(t, cfg, &fakeMarket{}, narr)

	require.NoError(t, st.Append(model.DailySummaryRecord{
		Date: "2025-08-29", Asset: "AAPL", Source: model.SourcePortfolio, Summary: "steady gains",
	}))
	require.NoError(t, st.Append(model.DailySummaryRecord{
		Date: "2025-08-20", Asset: "OLD", Source: model.SourcePortfolio, Summary: "stale",
	}))

	require.NoError(t, p.RunWeekly(context.Background()))

	require.Len(t, narr.calls, 1)
	assert.Contains(t, narr.calls[0], "steady gains")
	assert.NotContains(t, narr.calls[0], "stale")
}

func TestRunWeeklyEmptyWindowIsNotAnError(t *testing.T) {
	cfg := testConfig(t)
	narr := &fakeNarrator{reply: "unused"}
	p, _ := newTestPipeline(t, cfg, &fakeMarket{}, narr)

	require.NoError(t, p.RunWeekly(context.Background()))
	assert.Empty(t, narr.calls)
}

func TestRunWeeklyNarratorErrorPropagates(t *testing.T) {
	cfg := testConfig(t)
	narr := &fakeNarrator{err: errors.New("quota exceeded")}
	p, st := newTestPipeline(t, cfg, &fakeMarket{}, narr)

	require.NoError(t, st.Append(model.DailySummaryRecord{
		Date: "2025-08-30", Asset: "AAPL", Source: model.SourcePortfolio, Summary: "s",
	}))

	err := p.RunWeekly(context.Background())
	assert.ErrorContains(t, err, "quota exceeded")
}
