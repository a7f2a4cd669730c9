package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordDailyRun(_ *DailyRun) error             { return nil }
func (n *NoopRecorder) RecordWeeklyOverview(_ *WeeklyOverview) error { return nil }
func (n *NoopRecorder) Close() error                                 { return nil }
