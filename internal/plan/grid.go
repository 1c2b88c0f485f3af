package plan

import "github.com/inkwell-sh/inkwell/internal/font"

// DateNA is the Stats date-range value for an empty plan.
const DateNA = "n/a"

// Stats summarizes a plan. Derived on demand, never stored.
type Stats struct {
	TotalDays    int
	TotalCommits int
	UniqueChars  []string
	FirstDate    string
	LastDate     string
}

// BuildGrid projects the plan onto the 7×53 heatmap. Only units with real
// grid coordinates contribute; background filler is deliberately left out so
// a preview highlights the glyphs, not the padding.
func BuildGrid(p Plan) [][]int {
	grid := make([][]int, font.GlyphHeight)
	for r := range grid {
		grid[r] = make([]int, font.GridWeeks)
	}
	for _, u := range p.Units {
		if u.Row < 0 || u.Row >= font.GlyphHeight || u.Col < 0 || u.Col >= font.GridWeeks {
			continue
		}
		grid[u.Row][u.Col] = u.Commits
	}
	return grid
}

// Summarize computes plan statistics. Unique chars are reported in order of
// first appearance; background filler units carry no char and are not
// counted as one. An empty plan reports the DateNA range.
func Summarize(p Plan) Stats {
	s := Stats{
		TotalDays: len(p.Units),
		FirstDate: DateNA,
		LastDate:  DateNA,
	}
	seen := make(map[string]bool)
	for _, u := range p.Units {
		s.TotalCommits += u.Commits
		if u.Char != BackgroundKey && !seen[u.Char] {
			seen[u.Char] = true
			s.UniqueChars = append(s.UniqueChars, u.Char)
		}
	}
	if len(p.Units) > 0 {
		s.FirstDate = p.Units[0].Date
		s.LastDate = p.Units[len(p.Units)-1].Date
	}
	return s
}
