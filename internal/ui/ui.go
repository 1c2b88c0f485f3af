// Package ui prints human-facing output to stderr. Stdout is reserved for
// machine-readable output (--json), matching the usual CLI split.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/inkwell-sh/inkwell/internal/plan"
	"github.com/inkwell-sh/inkwell/internal/tracker"
)

// ANSI codes. The palette is deliberately minimal: emphasis and severity
// only.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

// Printer renders CLI output. NoColor suppresses all ANSI escapes.
type Printer struct {
	NoColor bool
}

func New(noColor bool) *Printer {
	return &Printer{NoColor: noColor}
}

func (p *Printer) c(code string) string {
	if p.NoColor {
		return ""
	}
	return code
}

func (p *Printer) Banner() {
	fmt.Fprintln(os.Stderr, p.c(bold+cyan)+"inkwell"+p.c(reset)+p.c(dim)+" — write on your contribution graph"+p.c(reset))
}

func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintf(os.Stderr, p.c(yellow)+"warning:"+p.c(reset)+" %s\n", msg)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, p.c(red+bold)+"error:"+p.c(reset)+" %s\n", msg)
}

// Warnings prints every planner warning.
func (p *Printer) Warnings(warnings []string) {
	for _, w := range warnings {
		p.Warn(w)
	}
}

// Grid renders the 7×53 heatmap preview. Filled cells are glyph pixels;
// background filler never appears here.
func (p *Printer) Grid(grid [][]int) {
	var b strings.Builder
	for _, row := range grid {
		for _, commits := range row {
			if commits > 0 {
				b.WriteString(p.c(green) + "██" + p.c(reset))
			} else {
				b.WriteString(p.c(dim) + "··" + p.c(reset))
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(os.Stderr, b.String())
}

// PlanSummary prints plan statistics in a compact block.
func (p *Printer) PlanSummary(pl plan.Plan, st plan.Stats) {
	fmt.Fprintf(os.Stderr, "\n%sPlan:%s %q in %d\n", p.c(bold), p.c(reset), pl.Text, pl.Year)
	fmt.Fprintf(os.Stderr, "  days:    %d\n", st.TotalDays)
	fmt.Fprintf(os.Stderr, "  commits: %d\n", st.TotalCommits)
	if len(st.UniqueChars) > 0 {
		fmt.Fprintf(os.Stderr, "  glyphs:  %s\n", strings.Join(st.UniqueChars, " "))
	}
	fmt.Fprintf(os.Stderr, "  range:   %s .. %s\n", st.FirstDate, st.LastDate)
}

// PendingSummary prints how much of the plan remains.
func (p *Printer) PendingSummary(totalUnits int, pending []tracker.PendingUnit) {
	done := totalUnits - len(pending)
	if len(pending) == 0 {
		fmt.Fprintf(os.Stderr, p.c(green+bold)+"✓ complete"+p.c(reset)+" — all %d day(s) executed\n", totalUnits)
		return
	}
	remaining := 0
	for _, u := range pending {
		remaining += u.PendingCommits
	}
	fmt.Fprintf(os.Stderr, "%d/%d day(s) done, %d commit(s) remaining\n", done, totalUnits, remaining)
}

// UnitDone reports an executed unit.
func (p *Printer) UnitDone(date string, made, want int) {
	mark := p.c(green) + "✓" + p.c(reset)
	if made < want {
		mark = p.c(yellow) + "⚠" + p.c(reset)
	}
	fmt.Fprintf(os.Stderr, "%s %s %d/%d commit(s)\n", mark, date, made, want)
}

// PlanDiff prints the difference between a saved plan and the current one.
func (p *Printer) PlanDiff(changes []plan.Change) {
	if len(changes) == 0 {
		fmt.Fprintf(os.Stderr, "%s(no changes)%s\n", p.c(dim), p.c(reset))
		return
	}
	for _, ch := range changes {
		var symbol, clr string
		switch ch.Kind {
		case "added":
			symbol, clr = "+", p.c(green)
		case "removed":
			symbol, clr = "-", p.c(red)
		case "changed":
			symbol, clr = "~", p.c(yellow)
		default:
			symbol, clr = "?", p.c(dim)
		}
		fmt.Fprintf(os.Stderr, "  %s%s %s%s — %s\n", clr, symbol, ch.Date, p.c(reset), ch.Detail)
	}
}
