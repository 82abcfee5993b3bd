package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/linktidy/linktidy/internal/model"
)

// HistoryDB stores per-run statistics summaries in SQLite.
// One database file per user (under the XDG data dir) rather than per
// document keeps cross-document queries and backups simple.
type HistoryDB struct {
	db     *sql.DB
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file when
	// they are missing.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging. Recommended; a run may be
	// saving while a history command reads.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the history database in dbDir.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "linktidy.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("history database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating
	// new files, mode=rwc allows creation.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports one writer; a single pooled connection avoids
	// SQLITE_BUSY churn for this small workload.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Runs store one row per tidy invocation per document
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		file_path TEXT NOT NULL,
		tidied_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		grouped INTEGER NOT NULL DEFAULT 0,
		total_links INTEGER NOT NULL DEFAULT 0,
		unique_links INTEGER NOT NULL DEFAULT 0,
		duplicates INTEGER NOT NULL DEFAULT 0,
		broken_links INTEGER NOT NULL DEFAULT 0,
		summary_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_file ON runs(file_path);
	CREATE INDEX IF NOT EXISTS idx_runs_tidied_at ON runs(tidied_at);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// Run is a stored history row.
type Run struct {
	ID          int64
	FilePath    string
	TidiedAt    time.Time
	Grouped     bool
	TotalLinks  int
	UniqueLinks int
	Duplicates  int
	BrokenLinks int

	// Summary is the full statistics summary as saved.
	Summary *model.Summary
}

// SaveSummary records one run's summary.
func (hdb *HistoryDB) SaveSummary(ctx context.Context, summary *model.Summary) (int64, error) {
	if summary == nil {
		return 0, errors.New("nil summary")
	}

	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize summary: %w", err)
	}

	query := `
	INSERT INTO runs (file_path, tidied_at, grouped, total_links, unique_links, duplicates, broken_links, summary_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := hdb.db.ExecContext(ctx, query,
		summary.FilePath,
		summary.TidiedAt.UTC().Format(time.RFC3339),
		summary.Grouped,
		summary.TotalLinks,
		summary.UniqueLinks,
		summary.Duplicates,
		len(summary.BrokenLinks),
		string(summaryJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	return result.LastInsertId()
}

// ListRuns returns the most recent runs, newest first. When filePath is
// non-empty only that document's runs are returned. Limit caps the
// result; non-positive means a default of 20.
func (hdb *HistoryDB) ListRuns(ctx context.Context, filePath string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
	SELECT id, file_path, tidied_at, grouped, total_links, unique_links, duplicates, broken_links, summary_json
	FROM runs
	`
	args := make([]any, 0, 2)
	if filePath != "" {
		query += " WHERE file_path = ?"
		args = append(args, filePath)
	}
	query += " ORDER BY tidied_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0)
	for rows.Next() {
		var r Run
		var tidiedAt string
		var summaryJSON string

		if err := rows.Scan(
			&r.ID,
			&r.FilePath,
			&tidiedAt,
			&r.Grouped,
			&r.TotalLinks,
			&r.UniqueLinks,
			&r.Duplicates,
			&r.BrokenLinks,
			&summaryJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		r.TidiedAt = parseTimestamp(tidiedAt)

		var summary model.Summary
		if err := json.Unmarshal([]byte(summaryJSON), &summary); err == nil {
			r.Summary = &summary
		}

		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// LatestRun returns the most recent run for a document, or nil when the
// document has no history.
func (hdb *HistoryDB) LatestRun(ctx context.Context, filePath string) (*Run, error) {
	runs, err := hdb.ListRuns(ctx, filePath, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// parseTimestamp parses the timestamp formats SQLite hands back
// depending on how the value was written.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
