package analytics

import (
	"reflect"
	"testing"
)

func TestMeetingTypeCounts(t *testing.T) {
	events := []EventSummary{
		{Title: "1:1 with Sam"},
		{Title: "Weekly 1-1"},
		{Title: "Team Standup"},
		{Title: "Candidate Interview"},
		{Title: "Design Review"},
		{Title: "Platform sync"},
		{Title: "Lunch"},
	}

	got := MeetingTypeCounts(events)
	want := map[string]int{
		TypeOneOnOne:  2,
		TypeStandup:   1,
		TypeInterview: 1,
		TypeGroup:     2,
		TypeOther:     1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMeetingTypeCountsFirstRuleWins(t *testing.T) {
	// A 1:1 whose title also says "sync" still counts as a 1:1.
	got := MeetingTypeCounts([]EventSummary{{Title: "1:1 sync"}})
	if got[TypeOneOnOne] != 1 || got[TypeGroup] != 0 {
		t.Errorf("got %v, want the 1:1 rule to win", got)
	}
}

func TestTimeDistribution(t *testing.T) {
	events := []EventSummary{
		{StartHour: 7},  // pre-8 counts as morning
		{StartHour: 8},
		{StartHour: 11},
		{StartHour: 12},
		{StartHour: 16},
		{StartHour: 17},
		{StartHour: 19},
		{StartHour: 21}, // past 8 PM, uncounted
	}

	got := TimeDistribution(events)
	want := map[string]int{
		SlotMorning:   3,
		SlotAfternoon: 2,
		SlotEvening:   2,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
