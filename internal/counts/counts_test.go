package counts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStatic(t *testing.T) {
	t.Parallel()

	s := Static{"2026-01-01": 3}
	got, err := s.Counts(2026)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if got["2026-01-01"] != 3 {
		t.Errorf("got %v", got)
	}
}

func TestFileProviderMissingFile(t *testing.T) {
	t.Parallel()

	p := &FileProvider{Path: filepath.Join(t.TempDir(), "none.json")}
	got, err := p.Counts(2026)
	if err != nil {
		t.Fatalf("missing file must not fail: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d entries, want 0", len(got))
	}
}

func TestFileProviderFiltersYear(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "counts.json")
	data := `{"2025-12-31": 4, "2026-01-01": 5, "2026-06-15": 7}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	p := &FileProvider{Path: path}
	got, err := p.Counts(2026)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got["2026-01-01"] != 5 || got["2026-06-15"] != 7 {
		t.Errorf("got %v", got)
	}
	if _, ok := got["2025-12-31"]; ok {
		t.Error("adjacent-year entry leaked through")
	}
}

func TestFileProviderMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "counts.json")
	if err := os.WriteFile(path, []byte("nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := (&FileProvider{Path: path}).Counts(2026); err == nil {
		t.Error("malformed counts file should fail loudly")
	}
}
