package plan

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const snapshotFileName = "plan.toml"

// SnapshotPath returns the plan snapshot location inside dir.
func SnapshotPath(dir string) string {
	return filepath.Join(dir, snapshotFileName)
}

// SaveSnapshot writes the plan to dir atomically (write temp + rename) so a
// later `plan --diff` can compare against what was previously scheduled.
func SaveSnapshot(dir string, p Plan) error {
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}

	path := SnapshotPath(dir)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing temp plan file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming plan file: %w", err)
	}
	return nil
}

// LoadSnapshot reads a previously saved plan from dir.
func LoadSnapshot(dir string) (Plan, error) {
	data, err := os.ReadFile(SnapshotPath(dir))
	if err != nil {
		return Plan{}, fmt.Errorf("reading plan file: %w", err)
	}
	var p Plan
	if err := toml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("parsing plan file: %w", err)
	}
	return p, nil
}

// Change describes one difference between two plans.
type Change struct {
	Kind   string // "added", "removed", "changed"
	Date   string
	Detail string
}

// Diff compares an old plan against a new one by date. Both plans are
// date-unique and date-sorted, so a map pass per side is enough.
func Diff(prev, next Plan) []Change {
	oldByDate := make(map[string]Unit, len(prev.Units))
	for _, u := range prev.Units {
		oldByDate[u.Date] = u
	}

	var changes []Change
	seen := make(map[string]bool, len(next.Units))
	for _, u := range next.Units {
		seen[u.Date] = true
		old, ok := oldByDate[u.Date]
		if !ok {
			changes = append(changes, Change{
				Kind:   "added",
				Date:   u.Date,
				Detail: fmt.Sprintf("%d commits", u.Commits),
			})
			continue
		}
		if old.Commits != u.Commits || old.Char != u.Char {
			changes = append(changes, Change{
				Kind:   "changed",
				Date:   u.Date,
				Detail: fmt.Sprintf("%d -> %d commits", old.Commits, u.Commits),
			})
		}
	}
	for _, u := range prev.Units {
		if !seen[u.Date] {
			changes = append(changes, Change{
				Kind:   "removed",
				Date:   u.Date,
				Detail: fmt.Sprintf("%d commits", u.Commits),
			})
		}
	}
	return changes
}
