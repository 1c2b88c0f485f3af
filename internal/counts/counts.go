// Package counts supplies externally observed per-day commit counts, the
// "existing" side of background leveling. The profile scraper that produces
// these numbers lives outside this repo; the planner only ever sees the
// date→count map a Provider returns.
package counts

import (
	"encoding/json"
	"fmt"
	"os"
)

// Provider produces the observed commit count per ISO date for a year.
// Dates absent from the map count as zero.
type Provider interface {
	Counts(year int) (map[string]int, error)
}

// Static is a fixed in-memory count map. It ignores the year: callers are
// expected to hand it the map for the year they plan.
type Static map[string]int

// Counts returns the map itself.
func (s Static) Counts(int) (map[string]int, error) {
	return s, nil
}

// FileProvider reads counts from a JSON file of the form
// {"2026-01-01": 3, ...}, the dump format of the external scraper.
type FileProvider struct {
	Path string
}

// Counts loads the file, filtered to the requested year. A missing file is
// an empty map — running without a scrape is the same as running against an
// empty profile.
func (f *FileProvider) Counts(year int) (map[string]int, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]int{}, nil
		}
		return nil, fmt.Errorf("counts: reading %s: %w", f.Path, err)
	}

	var all map[string]int
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("counts: parsing %s: %w", f.Path, err)
	}

	prefix := fmt.Sprintf("%04d-", year)
	out := make(map[string]int, len(all))
	for date, n := range all {
		if len(date) >= len(prefix) && date[:len(prefix)] == prefix {
			out[date] = n
		}
	}
	return out, nil
}
