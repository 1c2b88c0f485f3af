package plan

import (
	"fmt"
	"sort"
	"time"

	"github.com/inkwell-sh/inkwell/internal/calgrid"
	"github.com/inkwell-sh/inkwell/internal/font"
)

// pixel is a provisional text-pixel entry recorded during glyph layout,
// keyed by date before emission.
type pixel struct {
	char string
	row  int
	col  int
}

// Build produces the commit schedule for p. It never fails: unsupported
// characters are skipped and text that overflows the 53-week grid is
// truncated, both surfaced as warnings on the returned plan.
func Build(p Params) Plan {
	out := Plan{Text: p.Text, Year: p.Year}
	anchor := calgrid.GraphStartDate(p.Year)

	// Phase 1: lay glyphs onto the grid, recording filled pixels by date.
	pixels := make(map[string]pixel)
	week := p.StartWeek
	for _, key := range font.Tokenize(p.Text) {
		glyph, ok := font.Lookup(key)
		if !ok {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("unsupported character %q skipped", key))
			continue
		}
		w := glyph.Width()
		if week+w > font.GridWeeks {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("text truncated at %q: glyph does not fit in %d weeks", key, font.GridWeeks))
			break
		}
		for row := 0; row < font.GlyphHeight; row++ {
			for col := 0; col < w; col++ {
				if !glyph.Set(row, col) {
					continue
				}
				date := calgrid.OffsetToDate(anchor, week+col, row)
				if date.Year() != p.Year {
					// Edge columns spill into the adjacent year; those
					// cells are not part of this year's graph.
					continue
				}
				pixels[calgrid.FormatDate(date)] = pixel{
					char: key,
					row:  row,
					col:  week + col,
				}
			}
		}
		week += w + 1
	}

	// Phase 2: emit units.
	if p.BackgroundLevel == nil {
		for date, px := range pixels {
			out.Units = append(out.Units, Unit{
				Date:    date,
				Commits: p.CommitsPerPixel,
				Char:    px.char,
				Row:     px.row,
				Col:     px.col,
			})
		}
	} else {
		out.Units = levelYear(p, pixels)
	}

	// Phase 3: ISO date strings sort lexicographically in date order.
	sort.Slice(out.Units, func(i, j int) bool {
		return out.Units[i].Date < out.Units[j].Date
	})
	return out
}

// levelYear walks every day of the target year and emits the commits still
// needed to reach that day's target height: the background level, plus the
// per-pixel intensity on glyph days. The pass is target-minus-existing, not
// additive, so days with organic activity are topped up rather than bumped —
// the point is a uniform final height.
func levelYear(p Params, pixels map[string]pixel) []Unit {
	var units []Unit
	day := time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == p.Year {
		date := calgrid.FormatDate(day)
		target := *p.BackgroundLevel
		px, isPixel := pixels[date]
		if isPixel {
			target += p.CommitsPerPixel
		}
		need := target - p.ExistingCounts[date]
		if need > 0 {
			u := Unit{Date: date, Commits: need, Char: BackgroundKey, Row: NoCell, Col: NoCell}
			if isPixel {
				u.Char = px.char
				u.Row = px.row
				u.Col = px.col
			}
			units = append(units, u)
		}
		day = day.AddDate(0, 0, 1)
	}
	return units
}
