package analytics

import "strings"

// Meeting type labels.
const (
	TypeOneOnOne  = "1:1"
	TypeStandup   = "Standup"
	TypeInterview = "Interview"
	TypeGroup     = "Group"
	TypeOther     = "Other"
)

// Time-of-day bucket labels.
const (
	SlotMorning   = "Morning (8-12)"
	SlotAfternoon = "Afternoon (12-5)"
	SlotEvening   = "Evening (5-8)"
)

// EventSummary carries the fields the insight counters need: the raw title
// and the local start hour (24h). Formatted display strings never enter
// here; classification works on structured values only.
type EventSummary struct {
	Title           string
	StartHour       int
	DurationMinutes int
}

// MeetingTypeCounts classifies events by title substrings. The first rule
// that matches wins: 1:1 markers, then "standup", then "interview", then the
// generic group-meeting words, then Other. Matching is case-insensitive.
func MeetingTypeCounts(events []EventSummary) map[string]int {
	counts := map[string]int{
		TypeOneOnOne:  0,
		TypeGroup:     0,
		TypeStandup:   0,
		TypeInterview: 0,
		TypeOther:     0,
	}
	for _, ev := range events {
		title := strings.ToLower(ev.Title)
		switch {
		case strings.Contains(title, "1:1") || strings.Contains(title, "1-1"):
			counts[TypeOneOnOne]++
		case strings.Contains(title, "standup"):
			counts[TypeStandup]++
		case strings.Contains(title, "interview"):
			counts[TypeInterview]++
		case containsAny(title, "meeting", "sync", "discussion", "review"):
			counts[TypeGroup]++
		default:
			counts[TypeOther]++
		}
	}
	return counts
}

// TimeDistribution buckets events by local start hour. Anything before 8 AM
// counts as Morning; events starting at 8 PM or later fall in no bucket.
func TimeDistribution(events []EventSummary) map[string]int {
	counts := map[string]int{
		SlotMorning:   0,
		SlotAfternoon: 0,
		SlotEvening:   0,
	}
	for _, ev := range events {
		switch {
		case ev.StartHour < 12:
			counts[SlotMorning]++
		case ev.StartHour < 17:
			counts[SlotAfternoon]++
		case ev.StartHour < 20:
			counts[SlotEvening]++
		}
	}
	return counts
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
