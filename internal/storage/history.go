// Package storage keeps a SQLite log of finished intervals.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ezchuang/pomodoro4linux/internal/core"
)

type Interval struct {
	ID        int64
	Phase     core.Phase
	StartedAt time.Time
	EndedAt   time.Time
	Seconds   int
}

type Summary struct {
	WorkIntervals int
	RestIntervals int
	FocusSeconds  int
}

type History struct {
	db *sql.DB
}

func Open(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	db.SetMaxOpenConns(1)

	h := &History{db: db}
	if err := h.init(); err != nil {
		db.Close()
		return nil, err
	}
	return h, nil
}

func (h *History) init() error {
	_, err := h.db.Exec(`
		CREATE TABLE IF NOT EXISTS intervals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			phase INTEGER NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL,
			seconds INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("init history schema: %w", err)
	}
	return nil
}

func (h *History) Close() error {
	return h.db.Close()
}

func (h *History) Record(ctx context.Context, iv *Interval) error {
	res, err := h.db.ExecContext(ctx, `
		INSERT INTO intervals (phase, started_at, ended_at, seconds)
		VALUES (?, ?, ?, ?)
	`, int(iv.Phase), iv.StartedAt.Unix(), iv.EndedAt.Unix(), iv.Seconds)
	if err != nil {
		return fmt.Errorf("record interval: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	iv.ID = id
	return nil
}

// Summary totals the intervals that ended at or after since.
func (h *History) Summary(ctx context.Context, since time.Time) (Summary, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT phase, COUNT(*), COALESCE(SUM(seconds), 0)
		FROM intervals WHERE ended_at >= ?
		GROUP BY phase
	`, since.Unix())
	if err != nil {
		return Summary{}, fmt.Errorf("summarize intervals: %w", err)
	}
	defer rows.Close()

	var s Summary
	for rows.Next() {
		var phase, count, seconds int
		if err := rows.Scan(&phase, &count, &seconds); err != nil {
			return Summary{}, err
		}
		switch core.Phase(phase) {
		case core.PhaseWork:
			s.WorkIntervals = count
			s.FocusSeconds = seconds
		case core.PhaseRest:
			s.RestIntervals = count
		}
	}
	return s, rows.Err()
}

// StartOfDay is local midnight of t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
