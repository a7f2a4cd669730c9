package model

// Source says which configured list an asset came from.
type Source string

const (
	SourcePortfolio Source = "portfolio"
	SourceWatchlist Source = "watchlist"
)

// DateLayout is the calendar-date format used in the record store.
const DateLayout = "2006-01-02"

// DailySummaryRecord is one per-asset daily summary, created once per asset
// per run of the daily job and immutable once written. Date stays in its
// stored text form; the store does not enforce (date, asset) uniqueness, so
// a re-run appends a duplicate rather than upserting.
type DailySummaryRecord struct {
	Date    string
	Asset   string
	Source  Source
	Summary string
}

// WeeklyWindow is a read-only view over the record store: every record dated
// within the trailing window, partitioned by source. It is recomputed fresh
// on each aggregation and never persisted.
type WeeklyWindow struct {
	Portfolio []DailySummaryRecord
	Watchlist []DailySummaryRecord
}

// Headline is a news item, consumed only as opaque text for the narrative
// prompt.
type Headline struct {
	Title       string
	Description string
	URL         string
	PublishedAt string
}

// SocialPost is a community post, score-ranked by the provider.
type SocialPost struct {
	Title     string
	Score     int
	Subreddit string
}
