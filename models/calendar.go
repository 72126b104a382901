package models

// CalendarEvent is the formatted view of a Google Calendar event returned by
// the events endpoints. Dates render as "Jan 2", clock fields as "3:04 PM";
// all-day events carry "All Day" in both clock fields.
type CalendarEvent struct {
	Event           string   `json:"event"`
	Date            string   `json:"date"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	DurationMinutes int      `json:"duration_minutes"`
	TimeUntil       string   `json:"time_until"`
	Attendees       []string `json:"attendees"`
	OrganizerEmail  string   `json:"organizer_email,omitempty"`
	AllDay          bool     `json:"all_day"`
	Notes           string   `json:"notes,omitempty"`
}

// HolidayEvent is a row from the public US holidays calendar.
type HolidayEvent struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	TimeUntil string `json:"time_until"`
}

// FreeBlockResponse is the formatted view of an open stretch of a day.
type FreeBlockResponse struct {
	Date            string `json:"date"` // YYYY-MM-DD
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

// CalendarInsights summarizes a date range: how many meetings, what kind,
// when they land in the day, and what is still open.
type CalendarInsights struct {
	TotalEvents      int                 `json:"total_events"`
	TotalMinutes     int                 `json:"total_minutes"`
	MeetingTypes     map[string]int      `json:"meeting_types"`
	TimeDistribution map[string]int      `json:"time_distribution"`
	FreeBlocks       []FreeBlockResponse `json:"free_blocks,omitempty"`
}
