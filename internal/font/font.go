// Package font holds the pixel font used to draw text onto a contribution
// heatmap. Every glyph is a rectangular bitmap exactly GlyphHeight rows tall;
// widths vary per glyph. The table is populated once at init and is read-only
// afterwards.
package font

import (
	"sort"
	"strings"
)

// GlyphHeight is the fixed row count of every glyph, matching the seven
// weekday rows of a contribution graph.
const GlyphHeight = 7

// GridWeeks is the number of week columns in a contribution graph year.
const GridWeeks = 53

// standardAdvance is the grid width consumed by a standard glyph: five pixel
// columns plus the one-column gap between glyphs.
const standardAdvance = 6

// Glyph is a fixed-height pixel bitmap identified by its key. Keys are
// usually a single uppercase rune, but multi-rune keys (the "<3" heart) are
// supported and matched greedily by Tokenize.
type Glyph struct {
	Key  string
	rows []string
}

// Width returns the glyph's column count.
func (g Glyph) Width() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// Set reports whether the pixel at (row, col) is filled. Out-of-range
// coordinates are unfilled.
func (g Glyph) Set(row, col int) bool {
	if row < 0 || row >= len(g.rows) {
		return false
	}
	if col < 0 || col >= len(g.rows[row]) {
		return false
	}
	return g.rows[row][col] == '#'
}

// Lookup returns the glyph for key, if the table defines one.
func Lookup(key string) (Glyph, bool) {
	rows, ok := table[key]
	if !ok {
		return Glyph{}, false
	}
	return Glyph{Key: key, rows: rows}, true
}

// Width returns the column count for key, or 0 when the key is undefined.
func Width(key string) int {
	g, ok := Lookup(key)
	if !ok {
		return 0
	}
	return g.Width()
}

// Supported reports whether key has a glyph.
func Supported(key string) bool {
	_, ok := table[key]
	return ok
}

// MaxStandardChars reports how many standard-width glyphs (five pixels plus
// a one-column gap) fit across a contribution year.
func MaxStandardChars() int {
	return GridWeeks / standardAdvance
}

// Tokenize splits text into glyph keys. Input is normalized to uppercase
// first. Multi-rune keys are matched longest-first before single-rune
// indexing, so new composite glyphs only need a table entry. Unknown
// characters are returned as their own single-rune token; the caller decides
// how to handle the miss.
func Tokenize(text string) []string {
	text = strings.ToUpper(text)
	var keys []string
	for i := 0; i < len(text); {
		matched := false
		for _, multi := range multiKeys {
			if strings.HasPrefix(text[i:], multi) {
				keys = append(keys, multi)
				i += len(multi)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		keys = append(keys, string(text[i]))
		i++
	}
	return keys
}

// multiKeys lists every table key longer than one byte, longest first.
var multiKeys []string

func init() {
	for key := range table {
		if len(key) > 1 {
			multiKeys = append(multiKeys, key)
		}
	}
	sort.Slice(multiKeys, func(i, j int) bool {
		if len(multiKeys[i]) != len(multiKeys[j]) {
			return len(multiKeys[i]) > len(multiKeys[j])
		}
		return multiKeys[i] < multiKeys[j]
	})
}
