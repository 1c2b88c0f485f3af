package calgrid

import (
	"testing"
	"time"
)

func TestGraphStartDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want string
	}{
		{2023, "2023-01-01"}, // Jan 1 is itself a Sunday
		{2024, "2023-12-31"},
		{2025, "2024-12-29"},
		{2026, "2025-12-28"},
	}

	for _, tt := range tests {
		got := GraphStartDate(tt.year)
		if FormatDate(got) != tt.want {
			t.Errorf("GraphStartDate(%d) = %s, want %s", tt.year, FormatDate(got), tt.want)
		}
		if got.Weekday() != time.Sunday {
			t.Errorf("GraphStartDate(%d) falls on %s, want Sunday", tt.year, got.Weekday())
		}
	}
}

func TestGraphStartDateProperties(t *testing.T) {
	t.Parallel()

	for year := 2000; year <= 2040; year++ {
		anchor := GraphStartDate(year)
		jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		if anchor.After(jan1) {
			t.Errorf("anchor %s is after Jan 1 %d", FormatDate(anchor), year)
		}
		if jan1.Sub(anchor) >= 7*24*time.Hour {
			t.Errorf("anchor %s is more than a week before Jan 1 %d", FormatDate(anchor), year)
		}
	}
}

func TestOffsetToDate(t *testing.T) {
	t.Parallel()

	anchor := GraphStartDate(2023) // 2023-01-01

	tests := []struct {
		week, day int
		want      string
	}{
		{0, 0, "2023-01-01"},
		{0, 6, "2023-01-07"},
		{1, 0, "2023-01-08"},
		{2, 3, "2023-01-18"},
		{51, 6, "2023-12-30"},
	}

	for _, tt := range tests {
		got := OffsetToDate(anchor, tt.week, tt.day)
		if FormatDate(got) != tt.want {
			t.Errorf("OffsetToDate(%d, %d) = %s, want %s", tt.week, tt.day, FormatDate(got), tt.want)
		}
	}
}

func TestFormatDateZeroPads(t *testing.T) {
	t.Parallel()

	d := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2026-03-05" {
		t.Errorf("FormatDate = %q, want 2026-03-05", got)
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2026-02-28")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if FormatDate(d) != "2026-02-28" {
		t.Errorf("round trip = %q", FormatDate(d))
	}
}
