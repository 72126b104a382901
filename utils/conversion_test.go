package utils

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"06:00", 360, false},
		{"18:00", 1080, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
		{"-1:30", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatSpan(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{150, "2h 30min"},
		{180, "3h"},
		{45, "45min"},
		{0, "0min"},
	}
	for _, tt := range tests {
		if got := FormatSpan(tt.minutes); got != tt.want {
			t.Errorf("FormatSpan(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
