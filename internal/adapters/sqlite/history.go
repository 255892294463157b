package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ppw/internal/domain"
	"ppw/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// History implements ports.RunHistory using SQLite
type History struct {
	db     *sql.DB
	dbPath string
}

// Ensure History implements RunHistory
var _ ports.RunHistory = (*History)(nil)

// OpenHistory opens (creating if needed) the run history database at path.
// An empty path selects DefaultPath.
func OpenHistory(path string) (*History, error) {
	if path == "" {
		path = DefaultPath()
	}

	// Expand ~ in path
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	dsn := path
	if path != ":memory:" {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Batch runs are serial; one connection keeps :memory: databases intact
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			input TEXT NOT NULL,
			output_dir TEXT NOT NULL,
			flow TEXT NOT NULL,
			status TEXT NOT NULL,
			slot_count INTEGER NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			started_at INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', '` + schemaVersion + `');
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return &History{db: db, dbPath: path}, nil
}

// DefaultPath returns the history database location under the XDG data directory
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "ppw", "history.db")
}

// Path returns the database file in use
func (h *History) Path() string {
	return h.dbPath
}

// Close closes the database connection
func (h *History) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// Record stores one run. Recording the same ID twice replaces the earlier row.
func (h *History) Record(ctx context.Context, rec domain.RunRecord) error {
	_, err := h.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs (id, input, output_dir, flow, status, slot_count, error, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Input, rec.OutputDir, rec.Flow.String(), string(rec.Status), rec.SlotCount,
		rec.Error, rec.StartedAt.UnixNano(), rec.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to record run %s: %w", rec.ID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first
func (h *History) Recent(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT id, input, output_dir, flow, status, slot_count, error, started_at, duration_ms
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.RunRecord
	for rows.Next() {
		var (
			rec        domain.RunRecord
			flow       string
			status     string
			startedAt  int64
			durationMs int64
		)
		if err := rows.Scan(&rec.ID, &rec.Input, &rec.OutputDir, &flow, &status,
			&rec.SlotCount, &rec.Error, &startedAt, &durationMs); err != nil {
			return nil, err
		}
		rec.Flow = domain.ParseFlowName(flow)
		rec.Status = domain.RunStatus(status)
		rec.StartedAt = time.Unix(0, startedAt)
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		records = append(records, rec)
	}

	return records, rows.Err()
}
