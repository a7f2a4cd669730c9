package recorder

// DailyRun holds the analysis snapshot of one asset from one daily run.
type DailyRun struct {
	Date       string
	Asset      string
	Source     string
	Close      float64
	RSI        float64
	MACDLine   float64
	MACDSignal float64
	PctChange  float64
	Summary    string
}

// WeeklyOverview records one weekly synthesis run.
type WeeklyOverview struct {
	PortfolioCount int
	WatchlistCount int
	Overview       string
}

// Recorder persists analysis history for later inspection.
type Recorder interface {
	RecordDailyRun(run *DailyRun) error
	RecordWeeklyOverview(ov *WeeklyOverview) error
	Close() error
}
