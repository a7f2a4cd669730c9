// Package store persists daily summary records in a flat append-only CSV
// log: columns date,asset,source,summary, header row, one record per row.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"FolioSentry/internal/model"
)

var header = []string{"date", "asset", "source", "summary"}

// CSVStore is the sole writer-owned append-only log of daily summaries.
// Appends never overwrite, dedup or delete; concurrent writers serialize
// through the mutex since the file carries no transactional guarantee.
type CSVStore struct {
	mu   sync.Mutex
	path string
}

// NewCSVStore returns a store over the given file path. The file is not
// touched until the first Append.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Append adds one record to the log, materializing the directory, file and
// header row on first write.
func (s *CSVStore) Append(rec model.DailySummaryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store unavailable: %w", err)
		}
	}

	_, statErr := os.Stat(s.path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("store unavailable: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := w.Write([]string{rec.Date, rec.Asset, string(rec.Source), rec.Summary}); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	w.Flush()
	return w.Error()
}

// LoadAll returns every stored record in storage order, which is not
// guaranteed chronological; callers sort by date if that matters. A store
// that has never been written returns an empty slice.
func (s *CSVStore) LoadAll() ([]model.DailySummaryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("store unavailable: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	var out []model.DailySummaryRecord
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read store: %w", err)
		}
		if first {
			first = false
			if row[0] == header[0] {
				continue
			}
		}
		out = append(out, model.DailySummaryRecord{
			Date:    row[0],
			Asset:   row[1],
			Source:  model.Source(row[2]),
			Summary: row[3],
		})
	}
	return out, nil
}

// DedupByDateAsset is an optional read-side helper that collapses duplicate
// (date, asset) rows to the last occurrence, for callers that want a
// stronger key than the append-only log enforces. The log itself is never
// rewritten.
func DedupByDateAsset(records []model.DailySummaryRecord) []model.DailySummaryRecord {
	type key struct{ date, asset string }
	last := make(map[key]int, len(records))
	for i, rec := range records {
		last[key{rec.Date, rec.Asset}] = i
	}
	out := make([]model.DailySummaryRecord, 0, len(last))
	for i, rec := range records {
		if last[key{rec.Date, rec.Asset}] == i {
			out = append(out, rec)
		}
	}
	return out
}
