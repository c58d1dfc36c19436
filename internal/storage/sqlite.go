// Package storage provides SQLite-based persistence for finished runs and
// high scores. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
// It is safe for concurrent use by multiple SSH sessions.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID              int64
	Stage           string
	Player          string
	Score           int
	BlocksDestroyed int
	Items           int
	Cleared         bool
	DurationSecs    int
	CreatedAt       time.Time
}

// runRecord is the CSV row written by ExportCSV.
type runRecord struct {
	ID              int64  `csv:"id"`
	Stage           string `csv:"stage"`
	Player          string `csv:"player"`
	Score           int    `csv:"score"`
	BlocksDestroyed int    `csv:"blocks_destroyed"`
	Items           int    `csv:"items"`
	Cleared         bool   `csv:"cleared"`
	DurationSecs    int    `csv:"duration_secs"`
	CreatedAt       string `csv:"created_at"`
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SQLite allows one writer; SSH sessions share this handle
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			stage TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			blocks_destroyed INTEGER NOT NULL DEFAULT 0,
			items INTEGER NOT NULL DEFAULT 0,
			cleared INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_stage ON runs(stage);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(stage, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (stage, player, score, blocks_destroyed, items, cleared, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Stage, r.Player, r.Score, r.BlocksDestroyed, r.Items, r.Cleared, r.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, stage, player, score, blocks_destroyed, items, cleared, duration_secs, created_at`

// TopRuns retrieves the best runs for a stage, or for all stages when
// stage is empty. Results are ordered by score descending.
func (s *Store) TopRuns(stage string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR stage = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		stage, stage, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// AllRuns retrieves every run in insertion order, optionally filtered by
// stage.
func (s *Store) AllRuns(stage string) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR stage = ?
		 ORDER BY id ASC`,
		stage, stage,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Stage, &r.Player, &r.Score, &r.BlocksDestroyed,
			&r.Items, &r.Cleared, &r.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the given stage.
// Returns 0 if no runs exist.
func (s *Store) HighScore(stage string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE stage = ?",
		stage,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all runs for the given stage.
func (s *Store) ClearRuns(stage string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE stage = ?", stage)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// StageStats contains aggregated statistics for a stage.
type StageStats struct {
	Stage      string
	Runs       int
	Clears     int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetStageStats retrieves aggregated statistics for a specific stage.
func (s *Store) GetStageStats(stage string) (*StageStats, error) {
	stats := &StageStats{Stage: stage}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(cleared), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM runs WHERE stage = ?`,
		stage,
	).Scan(&stats.Runs, &stats.Clears, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stage stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE stage = ? ORDER BY id DESC LIMIT 1`,
		stage,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ExportCSV writes runs as CSV with a header row. An empty stage exports
// every stage.
func (s *Store) ExportCSV(w io.Writer, stage string) error {
	runs, err := s.AllRuns(stage)
	if err != nil {
		return err
	}
	records := make([]runRecord, len(runs))
	for i, r := range runs {
		records[i] = runRecord{
			ID:              r.ID,
			Stage:           r.Stage,
			Player:          r.Player,
			Score:           r.Score,
			BlocksDestroyed: r.BlocksDestroyed,
			Items:           r.Items,
			Cleared:         r.Cleared,
			DurationSecs:    r.DurationSecs,
			CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	if err := gocsv.Marshal(&records, w); err != nil {
		return fmt.Errorf("storage: cannot export csv: %w", err)
	}
	return nil
}
