// Package storage provides SQLite-based persistence for run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single finished run.
type RunEntry struct {
	ID        int64
	Level     int  // Highest level reached (1-based for display)
	Score     int  // Final score
	Cleared   bool // True when every level was completed
	CreatedAt time.Time
}

// RunStats summarizes the stored run history.
type RunStats struct {
	TotalRuns   int
	ClearedRuns int
	BestScore   int
	BestLevel   int
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
			level INTEGER NOT NULL,
			score INTEGER NOT NULL,
			cleared INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
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

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(level, score int, cleared bool) (int64, error) {
	clearedFlag := 0
	if cleared {
		clearedFlag = 1
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (level, score, cleared) VALUES (?, ?, ?)",
		level, score, clearedFlag,
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

// TopRuns retrieves the N best runs, ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, score, cleared, created_at
		 FROM runs
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var cleared int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Level, &e.Score, &cleared, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Cleared = cleared != 0

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest recorded score, or 0 if no runs exist.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats summarizes all stored runs.
func (s *Store) Stats() (RunStats, error) {
	var stats RunStats
	var best, bestLevel sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(cleared), 0), MAX(score), MAX(level) FROM runs`,
	).Scan(&stats.TotalRuns, &stats.ClearedRuns, &best, &bestLevel)
	if err != nil {
		return RunStats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if best.Valid {
		stats.BestScore = int(best.Int64)
	}
	if bestLevel.Valid {
		stats.BestLevel = int(bestLevel.Int64)
	}

	return stats, nil
}

// ClearRuns deletes the entire run history.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
