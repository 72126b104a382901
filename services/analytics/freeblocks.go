// Package analytics computes calendar insights from structured event data:
// free time blocks within the working-day window, meeting-type counts and
// time-of-day distribution. Everything here is a pure function over its
// inputs; callers own fetching, filtering and presentation.
package analytics

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the date format used for event and free-block days.
const DateLayout = "2006-01-02"

// EndOfDayMinute is the last representable minute of a day (23:59). An event
// whose end would spill past midnight clamps the scan cursor here instead of
// rolling into the next day.
const EndOfDayMinute = 23*60 + 59

// Event is one occupied stretch of a day, pre-localized and pre-filtered by
// the caller. StartMinute counts from midnight.
type Event struct {
	Date            string `json:"date"` // YYYY-MM-DD
	StartMinute     int    `json:"start_minute"`
	DurationMinutes int    `json:"duration_minutes"`
}

// FreeBlock is an unoccupied stretch of at least the configured minimum
// length within the working-day window.
type FreeBlock struct {
	Date            string `json:"date"` // YYYY-MM-DD
	StartMinute     int    `json:"start_minute"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Window bounds the workable day and sets the smallest gap worth reporting.
// All values are minutes; StartMinute/EndMinute count from midnight.
type Window struct {
	StartMinute     int
	EndMinute       int
	MinBlockMinutes int
}

// DefaultWindow is the 06:00-18:00 working day with a 30 minute threshold.
func DefaultWindow() Window {
	return Window{StartMinute: 6 * 60, EndMinute: 18 * 60, MinBlockMinutes: 30}
}

// InvalidWindowError reports a window whose end precedes its start.
type InvalidWindowError struct {
	StartMinute int
	EndMinute   int
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalid window: end minute %d before start minute %d", e.EndMinute, e.StartMinute)
}

// InvalidEventError reports an event with a negative duration.
type InvalidEventError struct {
	Index           int
	DurationMinutes int
}

func (e *InvalidEventError) Error() string {
	return fmt.Sprintf("invalid event at index %d: negative duration %d", e.Index, e.DurationMinutes)
}

// FindFreeBlocks reports the gaps of at least w.MinBlockMinutes between
// events, per day, inside the [w.StartMinute, w.EndMinute) window. The input
// may arrive unsorted; it is stable-sorted by (date, start) internally, so
// shuffling the input does not change the result. Only days that appear in
// the input are scanned; use FindFreeBlocksInRange to cover event-free days.
//
// Events are not clipped to the window before the scan. An event outside the
// window still advances the cursor, so a late event can suppress an otherwise
// valid trailing gap. That mirrors the behavior this computation replaces and
// is kept deliberately.
func FindFreeBlocks(events []Event, w Window) ([]FreeBlock, error) {
	if w.EndMinute < w.StartMinute {
		return nil, &InvalidWindowError{StartMinute: w.StartMinute, EndMinute: w.EndMinute}
	}
	for i, ev := range events {
		if ev.DurationMinutes < 0 {
			return nil, &InvalidEventError{Index: i, DurationMinutes: ev.DurationMinutes}
		}
	}

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].StartMinute < sorted[j].StartMinute
	})

	blocks := []FreeBlock{}
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j].Date == sorted[i].Date {
			j++
		}
		blocks = append(blocks, scanDay(sorted[i].Date, sorted[i:j], w)...)
		i = j
	}
	return blocks, nil
}

// FindFreeBlocksInRange runs the finder over every calendar day in
// [fromDate, toDate], so days without events yield the single full-window
// block. Dates are YYYY-MM-DD strings.
func FindFreeBlocksInRange(events []Event, fromDate, toDate string, w Window) ([]FreeBlock, error) {
	if w.EndMinute < w.StartMinute {
		return nil, &InvalidWindowError{StartMinute: w.StartMinute, EndMinute: w.EndMinute}
	}
	for i, ev := range events {
		if ev.DurationMinutes < 0 {
			return nil, &InvalidEventError{Index: i, DurationMinutes: ev.DurationMinutes}
		}
	}
	from, err := time.Parse(DateLayout, fromDate)
	if err != nil {
		return nil, fmt.Errorf("parsing from date %q: %w", fromDate, err)
	}
	to, err := time.Parse(DateLayout, toDate)
	if err != nil {
		return nil, fmt.Errorf("parsing to date %q: %w", toDate, err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("to date %s before from date %s", toDate, fromDate)
	}

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].StartMinute < sorted[j].StartMinute
	})

	byDate := map[string][]Event{}
	for _, ev := range sorted {
		byDate[ev.Date] = append(byDate[ev.Date], ev)
	}

	blocks := []FreeBlock{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(DateLayout)
		blocks = append(blocks, scanDay(key, byDate[key], w)...)
	}
	return blocks, nil
}

// scanDay walks one day's events in start order, emitting the gap before
// each event and the trailing gap up to the window end. Back-to-back and
// overlapping events are handled by advancing the cursor to the furthest end
// seen so far, which can never produce a negative gap.
func scanDay(date string, events []Event, w Window) []FreeBlock {
	blocks := []FreeBlock{}
	cursor := w.StartMinute
	for _, ev := range events {
		if cursor < ev.StartMinute {
			gap := ev.StartMinute - cursor
			if gap >= w.MinBlockMinutes {
				blocks = append(blocks, FreeBlock{Date: date, StartMinute: cursor, DurationMinutes: gap})
			}
		}
		end := ev.StartMinute + ev.DurationMinutes
		if end > EndOfDayMinute {
			end = EndOfDayMinute
		}
		if end > cursor {
			cursor = end
		}
	}
	if cursor < w.EndMinute {
		gap := w.EndMinute - cursor
		if gap >= w.MinBlockMinutes {
			blocks = append(blocks, FreeBlock{Date: date, StartMinute: cursor, DurationMinutes: gap})
		}
	}
	return blocks
}
