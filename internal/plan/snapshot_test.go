package plan

import (
	"reflect"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := Build(Params{Text: "HI", Year: 2026, CommitsPerPixel: 20, StartWeek: 1})

	if err := SaveSnapshot(dir, p); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	got, err := LoadSnapshot(dir)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Error("loaded snapshot differs from saved plan")
	}
}

func TestLoadSnapshotMissing(t *testing.T) {
	t.Parallel()

	if _, err := LoadSnapshot(t.TempDir()); err == nil {
		t.Error("LoadSnapshot on empty dir should fail")
	}
}

func TestDiff(t *testing.T) {
	t.Parallel()

	prev := Plan{Units: []Unit{
		{Date: "2026-01-01", Commits: 5},
		{Date: "2026-01-02", Commits: 5},
		{Date: "2026-01-03", Commits: 5},
	}}
	next := Plan{Units: []Unit{
		{Date: "2026-01-01", Commits: 5},  // unchanged
		{Date: "2026-01-02", Commits: 9},  // changed
		{Date: "2026-01-04", Commits: 5},  // added
	}}

	changes := Diff(prev, next)
	kinds := make(map[string]string, len(changes))
	for _, ch := range changes {
		kinds[ch.Date] = ch.Kind
	}

	want := map[string]string{
		"2026-01-02": "changed",
		"2026-01-04": "added",
		"2026-01-03": "removed",
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("diff kinds = %v, want %v", kinds, want)
	}
}

func TestDiffIdenticalPlans(t *testing.T) {
	t.Parallel()

	p := Build(Params{Text: "GO", Year: 2026, CommitsPerPixel: 3, StartWeek: 1})
	if changes := Diff(p, p); len(changes) != 0 {
		t.Errorf("identical plans produced %d changes", len(changes))
	}
}
