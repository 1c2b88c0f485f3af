// Package calgrid maps between contribution-graph coordinates and calendar
// dates. The graph is anchored at the Sunday on or before January 1; week
// columns advance from that anchor and day rows advance from Sunday. All
// functions are pure and operate in UTC.
package calgrid

import "time"

// DateLayout is the wire form used for plan units, ledger keys, and count
// maps.
const DateLayout = "2006-01-02"

// GraphStartDate returns the date of the top-left graph cell for year: the
// Sunday on or immediately before January 1.
func GraphStartDate(year int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return jan1.AddDate(0, 0, -int(jan1.Weekday()))
}

// OffsetToDate converts a (week, day) grid offset from anchor into a date.
func OffsetToDate(anchor time.Time, week, day int) time.Time {
	return anchor.AddDate(0, 0, week*7+day)
}

// FormatDate renders t as a zero-padded YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string produced by FormatDate.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
