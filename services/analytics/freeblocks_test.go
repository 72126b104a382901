package analytics

import (
	"errors"
	"reflect"
	"testing"
)

const day = "2025-06-17"

func TestFindFreeBlocksSingleEvent(t *testing.T) {
	// 09:00 for 60 minutes inside the 06:00-18:00 window splits the day in
	// two: 180 minutes before, 480 minutes after.
	events := []Event{{Date: day, StartMinute: 9 * 60, DurationMinutes: 60}}

	got, err := FindFreeBlocks(events, DefaultWindow())
	if err != nil {
		t.Fatalf("FindFreeBlocks: %v", err)
	}
	want := []FreeBlock{
		{Date: day, StartMinute: 6 * 60, DurationMinutes: 180},
		{Date: day, StartMinute: 10 * 60, DurationMinutes: 480},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFindFreeBlocksBackToBackEvents(t *testing.T) {
	events := []Event{
		{Date: day, StartMinute: 9 * 60, DurationMinutes: 30},
		{Date: day, StartMinute: 9*60 + 30, DurationMinutes: 30},
	}

	got, err := FindFreeBlocks(events, DefaultWindow())
	if err != nil {
		t.Fatalf("FindFreeBlocks: %v", err)
	}
	want := []FreeBlock{
		{Date: day, StartMinute: 6 * 60, DurationMinutes: 180},
		{Date: day, StartMinute: 10 * 60, DurationMinutes: 480},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFindFreeBlocksOverlappingEvents(t *testing.T) {
	// The second event starts inside the first and ends earlier. The cursor
	// must never move backwards, so no gap appears between them.
	events := []Event{
		{Date: day, StartMinute: 9 * 60, DurationMinutes: 120},
		{Date: day, StartMinute: 9*60 + 30, DurationMinutes: 30},
	}

	got, err := FindFreeBlocks(events, DefaultWindow())
	if err != nil {
		t.Fatalf("FindFreeBlocks: %v", err)
	}
	want := []FreeBlock{
		{Date: day, StartMinute: 6 * 60, DurationMinutes: 180},
		{Date: day, StartMinute: 11 * 60, DurationMinutes: 420},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFindFreeBlocksMidnightClamp(t *testing.T) {
	// An event ending past midnight clamps the cursor at 23:59 instead of
	// rolling into the next day, so no trailing gap follows it.
	events := []Event{{Date: day, StartMinute: 23*60 + 30, DurationMinutes: 90}}

	got, err := FindFreeBlocks(events, DefaultWindow())
	if err != nil {
		t.Fatalf("FindFreeBlocks: %v", err)
	}
	want := []FreeBlock{
		{Date: day, StartMinute: 6 * 60, DurationMinutes: 17*60 + 30},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFindFreeBlocksInvalidWindow(t *testing.T) {
	w := Window{StartMinute: 18 * 60, EndMinute: 6 * 60, MinBlockMinutes: 30}

	_, err := FindFreeBlocks(nil, w)
	var invalid *InvalidWindowError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want *InvalidWindowError", err)
	}
	if invalid.StartMinute != 18*60 || invalid.EndMinute != 6*60 {
		t.Errorf("error carries %d..%d, want 1080..360", invalid.StartMinute, invalid.EndMinute)
	}
}

func TestFindFreeBlocksNegativeDuration(t *testing.T) {
	events := []Event{
		{Date: day, StartMinute: 9 * 60, DurationMinutes: 30},
		{Date: day, StartMinute: 10 * 60, DurationMinutes: -5},
	}

	_, err := FindFreeBlocks(events, DefaultWindow())
	var invalid *InvalidEventError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want *InvalidEventError", err)
	}
	if invalid.Index != 1 || invalid.DurationMinutes != -5 {
		t.Errorf("error carries index %d duration %d, want 1 and -5", invalid.Index, invalid.DurationMinutes)
	}
}

func TestFindFreeBlocksEmptyInput(t *testing.T) {
	got, err := FindFreeBlocks(nil, DefaultWindow())
	if err != nil {
		t.Fatalf("FindFreeBlocks: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d blocks for empty input, want 0", len(got))
	}
}

func TestFindFreeBlocksThreshold(t *testing.T) {
	// The 20 minute gap between the events stays below the threshold and is
	// dropped; every reported block meets the minimum.
	events := []Event{
		{Date: day, StartMinute: 9 * 60, DurationMinutes: 60},
		{Date: day, StartMinute: 10*60 + 20, DurationMinutes: 60},
	}

	got, err := FindFreeBlocks(events, DefaultWindow())
	if err != nil {
		t.Fatalf("FindFreeBlocks: %v", err)
	}
	for _, b := range got {
		if b.DurationMinutes < 30 {
			t.Errorf("block %+v below 30 minute threshold", b)
		}
	}
	want := []FreeBlock{
		{Date: day, StartMinute: 6 * 60, DurationMinutes: 180},
		{Date: day, StartMinute: 11*60 + 20, DurationMinutes: 400},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFindFreeBlocksOrderIndependence(t *testing.T) {
	events := []Event{
		{Date: "2025-06-18", StartMinute: 14 * 60, DurationMinutes: 45},
		{Date: day, StartMinute: 9 * 60, DurationMinutes: 60},
		{Date: day, StartMinute: 13 * 60, DurationMinutes: 30},
		{Date: "2025-06-18", StartMinute: 8 * 60, DurationMinutes: 90},
	}
	shuffled := []Event{events[2], events[0], events[3], events[1]}

	got, err := FindFreeBlocks(events, DefaultWindow())
	if err != nil {
		t.Fatalf("FindFreeBlocks: %v", err)
	}
	gotShuffled, err := FindFreeBlocks(shuffled, DefaultWindow())
	if err != nil {
		t.Fatalf("FindFreeBlocks (shuffled): %v", err)
	}
	if !reflect.DeepEqual(got, gotShuffled) {
		t.Errorf("ordered input gave %+v, shuffled gave %+v", got, gotShuffled)
	}
}

func TestFindFreeBlocksNoOverlapWithEvents(t *testing.T) {
	events := []Event{
		{Date: day, StartMinute: 7 * 60, DurationMinutes: 45},
		{Date: day, StartMinute: 11 * 60, DurationMinutes: 120},
		{Date: day, StartMinute: 16 * 60, DurationMinutes: 30},
	}

	got, err := FindFreeBlocks(events, DefaultWindow())
	if err != nil {
		t.Fatalf("FindFreeBlocks: %v", err)
	}
	w := DefaultWindow()
	for _, b := range got {
		if b.StartMinute < w.StartMinute || b.StartMinute+b.DurationMinutes > w.EndMinute {
			t.Errorf("block %+v leaves the window", b)
		}
		for _, ev := range events {
			evEnd := ev.StartMinute + ev.DurationMinutes
			bEnd := b.StartMinute + b.DurationMinutes
			if b.StartMinute < evEnd && ev.StartMinute < bEnd {
				t.Errorf("block %+v overlaps event %+v", b, ev)
			}
		}
	}
}

func TestFindFreeBlocksLateEventSuppressesTrailingGap(t *testing.T) {
	// An event past the window end still advances the cursor; the scan does
	// not clip to the window, so no trailing gap is reported.
	events := []Event{
		{Date: day, StartMinute: 19 * 60, DurationMinutes: 60},
	}

	got, err := FindFreeBlocks(events, DefaultWindow())
	if err != nil {
		t.Fatalf("FindFreeBlocks: %v", err)
	}
	want := []FreeBlock{
		{Date: day, StartMinute: 6 * 60, DurationMinutes: 13 * 60},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFindFreeBlocksInRangeCoversEmptyDays(t *testing.T) {
	// A range scan yields the full-window block on the day with no events.
	events := []Event{{Date: "2025-06-17", StartMinute: 9 * 60, DurationMinutes: 720}}

	got, err := FindFreeBlocksInRange(events, "2025-06-17", "2025-06-18", DefaultWindow())
	if err != nil {
		t.Fatalf("FindFreeBlocksInRange: %v", err)
	}
	want := []FreeBlock{
		{Date: "2025-06-17", StartMinute: 6 * 60, DurationMinutes: 180},
		{Date: "2025-06-18", StartMinute: 6 * 60, DurationMinutes: 720},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFindFreeBlocksInRangeBadDates(t *testing.T) {
	if _, err := FindFreeBlocksInRange(nil, "June 17", "2025-06-18", DefaultWindow()); err == nil {
		t.Error("malformed from date accepted")
	}
	if _, err := FindFreeBlocksInRange(nil, "2025-06-18", "2025-06-17", DefaultWindow()); err == nil {
		t.Error("reversed range accepted")
	}
}

func TestFindFreeBlocksZeroMinGap(t *testing.T) {
	// A zero threshold is degenerate but valid: every positive gap appears.
	w := Window{StartMinute: 6 * 60, EndMinute: 18 * 60, MinBlockMinutes: 0}
	events := []Event{
		{Date: day, StartMinute: 9 * 60, DurationMinutes: 60},
		{Date: day, StartMinute: 10*60 + 10, DurationMinutes: 60},
	}

	got, err := FindFreeBlocks(events, w)
	if err != nil {
		t.Fatalf("FindFreeBlocks: %v", err)
	}
	want := []FreeBlock{
		{Date: day, StartMinute: 6 * 60, DurationMinutes: 180},
		{Date: day, StartMinute: 10 * 60, DurationMinutes: 10},
		{Date: day, StartMinute: 11*60 + 10, DurationMinutes: 410},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
