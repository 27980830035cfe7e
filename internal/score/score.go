// Package score persists the all-time high score in a flat text file.
// The file holds a single decimal integer. Reads and writes are
// best-effort: a missing file means no high score yet, and callers
// decide whether a failed write is worth reporting.
package score

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultPath returns the default high score location, or empty if the
// home directory is unavailable.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bounce", "highscore.txt")
}

// Store reads and writes the high score file.
type Store struct {
	path string
}

// NewStore creates a store for the given path. An empty path selects
// the default location. A leading ~ expands to the home directory.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &Store{path: path}
}

// Path returns the resolved file location.
func (s *Store) Path() string {
	return s.path
}

// Read returns the stored high score. A missing file is not an error
// and yields 0. A corrupt file yields 0 with the parse error, so the
// caller can log it and carry on.
func (s *Store) Read() (int, error) {
	if s.path == "" {
		return 0, fmt.Errorf("score: no home directory for default path")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("score: cannot read %s: %w", s.path, err)
	}

	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("score: corrupt file %s: %w", s.path, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("score: corrupt file %s: negative value", s.path)
	}
	return value, nil
}

// WriteIfHigher stores the score if it beats the current record.
// Returns true when a new record was written. The stored value never
// decreases: an unreadable existing file is treated as record 0.
func (s *Store) WriteIfHigher(value int) (bool, error) {
	if s.path == "" {
		return false, fmt.Errorf("score: no home directory for default path")
	}

	current, _ := s.Read()
	if value <= current {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return false, fmt.Errorf("score: cannot create directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(value)+"\n"), 0o644); err != nil {
		return false, fmt.Errorf("score: cannot write %s: %w", s.path, err)
	}
	return true, nil
}
