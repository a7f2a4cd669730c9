package narrative

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"FolioSentry/internal/indicator"
	"FolioSentry/internal/model"
)

func TestDailyPromptHeadingAndIndicators(t *testing.T) {
	in := DailyInput{
		Asset:  "aapl",
		Source: model.SourcePortfolio,
		Indicators: model.IndicatorSet{
			indicator.ColRSI:        {55.1234},
			indicator.ColMACDLine:   {1.5},
			indicator.ColMACDSignal: {1.25},
			indicator.ColSMA:        {187.2},
			indicator.ColEMA:        {188.9},
		},
		PctChange:    3.456,
		HasPctChange: true,
		LookbackDays: 30,
	}

	p := BuildDailyPrompt(in)

	assert.Contains(t, p, `"AAPL (Portfolio)"`)
	assert.Contains(t, p, "RSI=55.12")
	assert.Contains(t, p, "MACD_line=1.50")
	assert.Contains(t, p, "SMA_20=187.20")
	assert.Contains(t, p, "change over 30 days=3.46%")
	assert.Contains(t, p, "You currently hold this asset")
	assert.NotContains(t, p, "watchlist")
}

func TestDailyPromptWatchlistContext(t *testing.T) {
	in := DailyInput{Asset: "nvda", Source: model.SourceWatchlist, Indicators: model.IndicatorSet{}}

	p := BuildDailyPrompt(in)

	assert.Contains(t, p, `"NVDA (Watchlist)"`)
	assert.Contains(t, p, "This asset is on the watchlist")
	assert.NotContains(t, p, "You currently hold")
}

func TestDailyPromptUndefinedValuesRenderNA(t *testing.T) {
	in := DailyInput{
		Asset:      "bitcoin",
		Source:     model.SourceWatchlist,
		Indicators: model.IndicatorSet{indicator.ColRSI: {math.NaN()}},
	}

	p := BuildDailyPrompt(in)

	assert.Contains(t, p, "RSI=n/a")
	assert.Contains(t, p, "SMA_20=n/a")
	assert.Contains(t, p, "days=n/a")
}

func TestDailyPromptCapsHeadlinesAndPosts(t *testing.T) {
	in := DailyInput{Asset: "msft", Source: model.SourcePortfolio, Indicators: model.IndicatorSet{}}
	for i := 0; i < 8; i++ {
		in.Headlines = append(in.Headlines, model.Headline{Title: "headline", Description: "d", URL: "u"})
		in.Posts = append(in.Posts, model.SocialPost{Title: "post", Score: i, Subreddit: "msft"})
	}

	p := BuildDailyPrompt(in)

	assert.Equal(t, promptItems, strings.Count(p, "- headline"))
	assert.Equal(t, promptItems, strings.Count(p, ": post"))
}

func TestWeeklyPromptListsBothPartitions(t *testing.T) {
	win := &model.WeeklyWindow{
		Portfolio: []model.DailySummaryRecord{
			{Date: "2025-08-28", Asset: "AAPL", Source: model.SourcePortfolio, Summary: "steady"},
		},
	}

	p := BuildWeeklyPrompt(win)

	assert.Contains(t, p, "Portfolio Assets Summaries")
	assert.Contains(t, p, "2025-08-28 | AAPL | steady")
	assert.Contains(t, p, "Watchlist Assets Summaries")
	assert.Contains(t, p, "(none)")
}
