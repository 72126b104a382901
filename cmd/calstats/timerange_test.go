package main

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("US/Pacific")
	if err != nil {
		t.Fatalf("loading location: %v", err)
	}
	d, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	if err != nil {
		t.Fatalf("parsing %q: %v", value, err)
	}
	return d
}

func TestResolveTimeRange(t *testing.T) {
	// 2026-06-17 is a Wednesday, 2026-06-21 a Sunday.
	wednesday := "2026-06-17 10:30"
	sunday := "2026-06-21 10:30"

	tests := []struct {
		name      string
		now       string
		rangeName string
		wantStart string
		wantEnd   string
	}{
		{"today", wednesday, "today", "2026-06-17", "2026-06-17"},
		{"tomorrow", wednesday, "tomorrow", "2026-06-18", "2026-06-18"},
		{"day after", wednesday, "day after", "2026-06-19", "2026-06-19"},
		{"this week runs Monday through Sunday", wednesday, "this week", "2026-06-15", "2026-06-21"},
		{"this week on a Sunday rolls forward", sunday, "this week", "2026-06-22", "2026-06-28"},
		{"next week", wednesday, "next week", "2026-06-22", "2026-06-28"},
		{"next week on a Sunday", sunday, "next week", "2026-06-22", "2026-06-28"},
		{"this month", wednesday, "this month", "2026-06-01", "2026-06-30"},
		{"next month", wednesday, "next month", "2026-07-01", "2026-07-31"},
		{"next month across the year", "2026-12-15 09:00", "next month", "2027-01-01", "2027-01-31"},
		{"past month name wraps to next year", wednesday, "march", "2027-03-01", "2027-03-31"},
		{"current month name stays this year", wednesday, "june", "2026-06-01", "2026-06-30"},
		{"future month name", wednesday, "december", "2026-12-01", "2026-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ResolveTimeRange(tt.rangeName, mustDate(t, tt.now))
			if err != nil {
				t.Fatalf("ResolveTimeRange(%q): %v", tt.rangeName, err)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("got (%s, %s), want (%s, %s)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestResolveTimeRangeInvalid(t *testing.T) {
	if _, _, err := ResolveTimeRange("fortnight", mustDate(t, "2026-06-17 10:30")); err == nil {
		t.Fatal("expected error for unknown range")
	}
}

func TestShowsFreeBlocks(t *testing.T) {
	for _, name := range []string{"today", "tomorrow", "this week", "next week"} {
		if !ShowsFreeBlocks(name) {
			t.Errorf("ShowsFreeBlocks(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"this month", "next month", "december", "day after"} {
		if ShowsFreeBlocks(name) {
			t.Errorf("ShowsFreeBlocks(%q) = true, want false", name)
		}
	}
}
