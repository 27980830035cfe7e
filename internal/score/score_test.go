package score

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadMissingFileIsZero(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "highscore.txt"))

	got, err := s.Read()
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}

func TestReadCorruptFileReturnsZeroAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("not a number"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(path)
	got, err := s.Read()
	if err == nil {
		t.Fatal("expected parse error")
	}
	if got != 0 {
		t.Errorf("score = %d, want 0 on corrupt file", got)
	}
}

func TestWriteIfHigherIsMonotonic(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "highscore.txt"))

	wrote, err := s.WriteIfHigher(100)
	if err != nil || !wrote {
		t.Fatalf("first write: wrote=%v err=%v", wrote, err)
	}

	// Lower and equal scores leave the record alone.
	for _, v := range []int{50, 100} {
		wrote, err = s.WriteIfHigher(v)
		if err != nil {
			t.Fatalf("WriteIfHigher(%d): %v", v, err)
		}
		if wrote {
			t.Errorf("WriteIfHigher(%d) wrote, record is 100", v)
		}
	}
	if got, _ := s.Read(); got != 100 {
		t.Errorf("score = %d, want 100", got)
	}

	wrote, err = s.WriteIfHigher(250)
	if err != nil || !wrote {
		t.Fatalf("higher write: wrote=%v err=%v", wrote, err)
	}
	if got, _ := s.Read(); got != 250 {
		t.Errorf("score = %d, want 250", got)
	}
}

func TestWriteCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "highscore.txt")
	s := NewStore(path)

	if _, err := s.WriteIfHigher(10); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if got, _ := s.Read(); got != 10 {
		t.Errorf("score = %d, want 10", got)
	}
}

func TestWriteReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(path)
	wrote, err := s.WriteIfHigher(42)
	if err != nil || !wrote {
		t.Fatalf("wrote=%v err=%v", wrote, err)
	}
	if got, err := s.Read(); err != nil || got != 42 {
		t.Errorf("score = %d err = %v, want 42", got, err)
	}
}

func TestReadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("  1234\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(path)
	got, err := s.Read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got != 1234 {
		t.Errorf("score = %d, want 1234", got)
	}
}
