package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS daily_runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			date        TEXT,
			asset       TEXT,
			source      TEXT,
			close       REAL,
			rsi         REAL,
			macd_line   REAL,
			macd_signal REAL,
			pct_change  REAL,
			summary     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_runs_ts ON daily_runs(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_runs_asset ON daily_runs(asset)`,

		`CREATE TABLE IF NOT EXISTS weekly_overviews (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			portfolio_count INTEGER,
			watchlist_count INTEGER,
			overview        TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_weekly_overviews_ts ON weekly_overviews(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordDailyRun(run *DailyRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO daily_runs
		(timestamp, date, asset, source, close, rsi, macd_line, macd_signal, pct_change, summary)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), run.Date, run.Asset, run.Source,
		run.Close, run.RSI, run.MACDLine, run.MACDSignal, run.PctChange, run.Summary,
	)
	return err
}

func (r *SQLiteRecorder) RecordWeeklyOverview(ov *WeeklyOverview) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO weekly_overviews
		(timestamp, portfolio_count, watchlist_count, overview)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), ov.PortfolioCount, ov.WatchlistCount, ov.Overview,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
