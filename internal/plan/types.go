// Package plan turns text, a year, and intensity parameters into an ordered
// schedule of per-day commit counts — one unit per calendar day — that the
// executor and tracker consume. Plans are value types: rebuilt from their
// inputs rather than mutated, so identical inputs always produce identical
// plans.
package plan

// BackgroundKey is the Char value for units that exist only to raise a day
// to the background level; they belong to no glyph.
const BackgroundKey = ""

// NoCell is the Row/Col value for units outside the visual grid
// (background filler days).
const NoCell = -1

// Unit is one calendar day's required commit activity.
type Unit struct {
	Date    string `json:"date" toml:"date"`
	Commits int    `json:"commits" toml:"commits"`
	Char    string `json:"char,omitempty" toml:"char,omitempty"`
	Row     int    `json:"row" toml:"row"`
	Col     int    `json:"col" toml:"col"`
}

// IsBackground reports whether the unit is pure background filler.
func (u Unit) IsBackground() bool {
	return u.Char == BackgroundKey
}

// Params are the planner inputs. Text is case-insensitive; the planner
// uppercases it before glyph lookup. BackgroundLevel nil means no background
// leveling: only glyph pixels are emitted and ExistingCounts is ignored.
type Params struct {
	Text            string
	Year            int
	CommitsPerPixel int
	StartWeek       int
	BackgroundLevel *int
	ExistingCounts  map[string]int
}

// Plan is an ordered unit schedule plus the non-fatal warnings produced
// while building it. Units are sorted ascending by date and dates are
// unique.
type Plan struct {
	Text     string   `json:"text" toml:"text"`
	Year     int      `json:"year" toml:"year"`
	Units    []Unit   `json:"units" toml:"units"`
	Warnings []string `json:"warnings,omitempty" toml:"warnings,omitempty"`
}
