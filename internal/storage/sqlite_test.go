package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		level   int
		score   int
		cleared bool
	}{
		{1, 100, false},
		{2, 350, false},
		{3, 900, true},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.level, r.score, r.cleared); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	entries, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(entries))
	}

	// Should be sorted descending by score
	if entries[0].Score != 900 || entries[1].Score != 350 || entries[2].Score != 100 {
		t.Errorf("Runs not in expected order: %v", entries)
	}
	if !entries[0].Cleared {
		t.Error("Expected best run to be marked cleared")
	}
	if entries[0].Level != 3 {
		t.Errorf("Expected best run at level 3, got %d", entries[0].Level)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(1, (i+1)*100, false)
	}

	entries, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(entries))
	}
	if entries[0].Score != 500 || entries[1].Score != 400 || entries[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", entries)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	// Empty database should return 0
	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty database, got %d", best)
	}

	store.SaveRun(1, 150, false)
	store.SaveRun(2, 700, false)
	store.SaveRun(1, 50, false)

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 700 {
		t.Errorf("Expected best score 700, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty database
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.TotalRuns != 0 || stats.BestScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(1, 100, false)
	store.SaveRun(3, 800, true)
	store.SaveRun(2, 400, false)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.TotalRuns != 3 {
		t.Errorf("TotalRuns = %d, want 3", stats.TotalRuns)
	}
	if stats.ClearedRuns != 1 {
		t.Errorf("ClearedRuns = %d, want 1", stats.ClearedRuns)
	}
	if stats.BestScore != 800 {
		t.Errorf("BestScore = %d, want 800", stats.BestScore)
	}
	if stats.BestLevel != 3 {
		t.Errorf("BestLevel = %d, want 3", stats.BestLevel)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(1, 100, false)
	store.SaveRun(2, 200, false)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	entries, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(entries))
	}
}
