package main

import (
	"fmt"
	"strings"
	"time"

	"eventhorizon/utils"
)

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// ResolveTimeRange turns a spoken range like "today" or "next week" into a
// YYYY-MM-DD start/end pair. Weeks run Monday through Sunday; on a Sunday
// "this week" rolls forward to the week starting tomorrow. A bare month name
// resolves to that month's next occurrence.
func ResolveTimeRange(name string, now time.Time) (string, string, error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Days since Monday.
	weekday := (int(now.Weekday()) + 6) % 7

	var start, end time.Time
	switch name {
	case "today":
		start, end = day, day
	case "tomorrow":
		start = day.AddDate(0, 0, 1)
		end = start
	case "day after":
		start = day.AddDate(0, 0, 2)
		end = start
	case "this week":
		if now.Weekday() == time.Sunday {
			start = day.AddDate(0, 0, 1)
			end = day.AddDate(0, 0, 7)
		} else {
			start = day.AddDate(0, 0, -weekday)
			end = start.AddDate(0, 0, 6)
		}
	case "next week":
		start = day.AddDate(0, 0, 7-weekday)
		end = start.AddDate(0, 0, 6)
	case "this month":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, -1)
	case "next month":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
		end = start.AddDate(0, 1, -1)
	default:
		month, ok := monthsByName[strings.ToLower(name)]
		if !ok {
			return "", "", fmt.Errorf("invalid time range: %s", name)
		}
		year := now.Year()
		if month < now.Month() {
			year++
		}
		start = time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, -1)
	}
	return start.Format(utils.DateLayout), end.Format(utils.DateLayout), nil
}

// ShowsFreeBlocks reports whether free blocks are worth printing for the
// range; month-scale spans would drown the summary in them.
func ShowsFreeBlocks(name string) bool {
	switch name {
	case "today", "tomorrow", "this week", "next week":
		return true
	}
	return false
}
