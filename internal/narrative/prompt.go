package narrative

import (
	"fmt"
	"math"
	"strings"

	"FolioSentry/internal/indicator"
	"FolioSentry/internal/model"
)

// System instructions for the two jobs.
const (
	DailySystem = "You are a financial assistant who provides precise, timely, and data-driven " +
		"market insights without telling the user to watch or monitor anything."
	WeeklySystem = "You are a strategic financial advisor who synthesizes multiple asset insights " +
		"into a coherent strategy."
)

// DailyInput carries everything the daily analysis prompt references.
type DailyInput struct {
	Asset        string
	Source       model.Source
	Indicators   model.IndicatorSet
	PctChange    float64
	HasPctChange bool
	LookbackDays int
	Headlines    []model.Headline
	Posts        []model.SocialPost
}

// promptItems caps how many headlines/posts go into a prompt.
const promptItems = 5

func fmtCol(set model.IndicatorSet, col string) string {
	v, ok := set.Latest(col)
	if !ok || math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}

// BuildDailyPrompt renders the per-asset daily analysis prompt: asset
// heading with source category, latest indicator values, recent percent
// change over the lookback, and the top-ranked news and social items.
func BuildDailyPrompt(in DailyInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a top-tier financial analyst. Provide a heading with the asset and its source category:\n\n")
	fmt.Fprintf(&b, "Heading: %q\n\n", fmt.Sprintf("%s (%s)", strings.ToUpper(in.Asset), title(string(in.Source))))
	fmt.Fprintf(&b, "You have about a year of historical data and recent indicators for %s.\n", in.Asset)
	fmt.Fprintf(&b, "Use long-term data to identify patterns that matter now, and short-term indicators (last %d days) for immediate action.\n\n", in.LookbackDays)

	pct := "n/a"
	if in.HasPctChange {
		pct = fmt.Sprintf("%.2f%%", in.PctChange)
	}
	fmt.Fprintf(&b, "Latest indicators: RSI=%s, MACD_line=%s, MACD_signal=%s, SMA_20=%s, EMA_20=%s, recent change over %d days=%s.\n",
		fmtCol(in.Indicators, indicator.ColRSI),
		fmtCol(in.Indicators, indicator.ColMACDLine),
		fmtCol(in.Indicators, indicator.ColMACDSignal),
		fmtCol(in.Indicators, indicator.ColSMA),
		fmtCol(in.Indicators, indicator.ColEMA),
		in.LookbackDays, pct)

	if len(in.Headlines) > 0 {
		b.WriteString("\nRecent news headlines:\n")
		for i, h := range in.Headlines {
			if i >= promptItems {
				break
			}
			fmt.Fprintf(&b, "- %s — %s (%s)\n", h.Title, h.Description, h.URL)
		}
	}
	if len(in.Posts) > 0 {
		b.WriteString("\nTop community posts:\n")
		for i, p := range in.Posts {
			if i >= promptItems {
				break
			}
			fmt.Fprintf(&b, "- [%d] r/%s: %s\n", p.Score, p.Subreddit, p.Title)
		}
	}

	b.WriteString("\n")
	if in.Source == model.SourcePortfolio {
		b.WriteString("You currently hold this asset. Provide direct instructions based on current conditions. " +
			"Do not ask the user to monitor or watch anything; simply state what to do right now, " +
			"such as 'Add to position', 'Hold steady', 'Trim your stake', or 'Sell immediately' if warranted.\n")
	} else {
		b.WriteString("This asset is on the watchlist. Provide direct instructions on whether to buy now, wait, " +
			"or avoid entirely based on current conditions. Do not tell the user to monitor or watch; " +
			"just give a direct recommended action.\n")
	}
	b.WriteString("\nYour final recommendation must be a direct, current action based on the synthesis of all data. " +
		"Do not tell the user to monitor conditions, as this analysis runs daily and changes surface automatically.\n")

	return b.String()
}

// BuildWeeklyPrompt renders the strategic overview prompt from a windowed
// partition of daily summaries.
func BuildWeeklyPrompt(win *model.WeeklyWindow) string {
	var b strings.Builder

	b.WriteString("You are a sophisticated financial analyst. Below are the daily summaries from the past week " +
		"for all assets in the portfolio and watchlist.\n\n")

	b.WriteString("Portfolio Assets Summaries (Past Week):\n")
	writeRecords(&b, win.Portfolio)
	b.WriteString("\nWatchlist Assets Summaries (Past Week):\n")
	writeRecords(&b, win.Watchlist)

	b.WriteString("\nUse this data to:\n" +
		"1. Identify key trends or shifts in the portfolio assets.\n" +
		"2. Determine if any watchlist assets have shown enough positive signs to justify adding them to the portfolio.\n" +
		"3. Provide a strategic-level recommendation. If certain portfolio assets are underperforming consistently, " +
		"consider rotating out of them. If some watchlist assets are showing strong signs, advise adding them now.\n" +
		"4. Provide direct strategic suggestions rather than telling the user to monitor conditions.\n\n" +
		"Your response should be a single comprehensive summary message, focusing on strategic actions to take " +
		"at this point in time. Be clear and direct, leveraging the patterns observed in these daily summaries.\n")

	return b.String()
}

func writeRecords(b *strings.Builder, recs []model.DailySummaryRecord) {
	if len(recs) == 0 {
		b.WriteString("(none)\n")
		return
	}
	for _, r := range recs {
		fmt.Fprintf(b, "%s | %s | %s\n", r.Date, r.Asset, r.Summary)
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
