package calendar

import (
	"strings"
	"testing"
	"time"

	"eventhorizon/services/analytics"
)

func TestTimeUntil(t *testing.T) {
	now := time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		start time.Time
		want  string
	}{
		{now.Add(50*time.Hour + 30*time.Minute), "In 2d 2h"},
		{now.Add(3*time.Hour + 4*time.Minute), "In 3h 4m"},
		{now.Add(5 * time.Minute), "In 5m"},
		{now.Add(-time.Minute), "Past"},
	}
	for _, tt := range tests {
		if got := TimeUntil(now, tt.start); got != tt.want {
			t.Errorf("TimeUntil(%v) = %q, want %q", tt.start, got, tt.want)
		}
	}
}

func TestTimeUntilAllDay(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		date string
		want string
	}{
		{"2025-06-20", "In 2d 14h"},
		{"2025-06-16", "Past"},
		{"2025-06-18", "In 14h"},
		{"not-a-date", "Unknown"},
	}
	for _, tt := range tests {
		if got := TimeUntilAllDay(now, tt.date, loc); got != tt.want {
			t.Errorf("TimeUntilAllDay(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestTimeUntilAllDayToday(t *testing.T) {
	loc := time.UTC
	// Ten minutes before midnight: less than an hour until the event day.
	now := time.Date(2025, 6, 17, 23, 50, 0, 0, time.UTC)
	if got := TimeUntilAllDay(now, "2025-06-18", loc); got != "Today" {
		t.Errorf("got %q, want %q", got, "Today")
	}
}

func TestMinuteClock(t *testing.T) {
	tests := []struct {
		minute int
		want   string
	}{
		{0, "12:00 AM"},
		{6 * 60, "6:00 AM"},
		{9*60 + 5, "9:05 AM"},
		{12 * 60, "12:00 PM"},
		{18 * 60, "6:00 PM"},
		{23*60 + 59, "11:59 PM"},
	}
	for _, tt := range tests {
		if got := MinuteClock(tt.minute); got != tt.want {
			t.Errorf("MinuteClock(%d) = %q, want %q", tt.minute, got, tt.want)
		}
	}
}

func TestFormatFreeBlocks(t *testing.T) {
	blocks := []analytics.FreeBlock{
		{Date: "2025-06-17", StartMinute: 6 * 60, DurationMinutes: 180},
	}

	got := FormatFreeBlocks(blocks)
	if len(got) != 1 {
		t.Fatalf("got %d responses, want 1", len(got))
	}
	if got[0].StartTime != "6:00 AM" || got[0].EndTime != "9:00 AM" {
		t.Errorf("span rendered as %s-%s, want 6:00 AM-9:00 AM", got[0].StartTime, got[0].EndTime)
	}
	if got[0].DurationMinutes != 180 {
		t.Errorf("duration = %d, want 180", got[0].DurationMinutes)
	}
}

func TestAllDayDuration(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2025-06-17", "2025-06-18", 1440},  // single day
		{"2025-06-17", "2025-06-20", 4320},  // three days
		{"2025-06-17", "2025-06-17", 1440},  // degenerate, floors at one day
	}
	for _, tt := range tests {
		if got := allDayDuration(tt.start, tt.end); got != tt.want {
			t.Errorf("allDayDuration(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestRenderFreeBlocksICS(t *testing.T) {
	blocks := []analytics.FreeBlock{
		{Date: "2025-06-17", StartMinute: 6 * 60, DurationMinutes: 180},
		{Date: "2025-06-18", StartMinute: 10 * 60, DurationMinutes: 90},
	}

	out, err := RenderFreeBlocksICS(blocks, time.UTC)
	if err != nil {
		t.Fatalf("RenderFreeBlocksICS: %v", err)
	}
	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Error("output is not an iCalendar document")
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("rendered %d events, want 2", got)
	}
	if !strings.Contains(out, "Free block (3h)") {
		t.Error("missing summary for the 3h block")
	}
	if !strings.Contains(out, "Free block (1h 30min)") {
		t.Error("missing summary for the 1h 30min block")
	}
}
