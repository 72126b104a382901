package calendar

import (
	"fmt"
	"time"

	"eventhorizon/models"
	"eventhorizon/services/analytics"
	"eventhorizon/utils"
)

// Display layouts. Dates render as "Jun 17", clocks as "3:04 PM" with no
// leading zero on the hour.
const (
	dateLabelLayout = "Jan 2"
	clockLayout     = "3:04 PM"
)

const minutesPerDay = 24 * 60

// TimeUntil renders the distance from now to a timed event: "In 2d 3h",
// "In 3h 4m", "In 5m", or "Past" for events already begun.
func TimeUntil(now, start time.Time) string {
	diff := start.Sub(now)
	if diff < 0 {
		return "Past"
	}
	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	minutes := int(diff.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("In %dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("In %dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("In %dm", minutes)
	}
}

// TimeUntilAllDay renders the distance to the midnight that starts an
// all-day event. Same-day events read "Today"; minute precision is not
// meaningful at day granularity.
func TimeUntilAllDay(now time.Time, date string, loc *time.Location) string {
	day, err := time.ParseInLocation(utils.DateLayout, date, loc)
	if err != nil {
		return "Unknown"
	}
	diff := day.Sub(now)
	if diff < 0 {
		return "Past"
	}
	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	switch {
	case days > 0:
		return fmt.Sprintf("In %dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("In %dh", hours)
	default:
		return "Today"
	}
}

// MinuteClock renders minutes-from-midnight as a 12-hour clock label.
func MinuteClock(minute int) string {
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(minute) * time.Minute).Format(clockLayout)
}

// FormatFreeBlocks converts structured free blocks into their display form.
// This is the rendering boundary: everything upstream works on minutes.
func FormatFreeBlocks(blocks []analytics.FreeBlock) []models.FreeBlockResponse {
	out := make([]models.FreeBlockResponse, 0, len(blocks))
	for _, b := range blocks {
		end := b.StartMinute + b.DurationMinutes
		if end > analytics.EndOfDayMinute {
			end = analytics.EndOfDayMinute
		}
		out = append(out, models.FreeBlockResponse{
			Date:            b.Date,
			StartTime:       MinuteClock(b.StartMinute),
			EndTime:         MinuteClock(end),
			DurationMinutes: b.DurationMinutes,
		})
	}
	return out
}

// allDayDuration computes the minute span of an all-day event from its
// date-only bounds, never less than one full day.
func allDayDuration(startDate, endDate string) int {
	start, err1 := time.Parse(utils.DateLayout, startDate)
	end, err2 := time.Parse(utils.DateLayout, endDate)
	if err1 != nil || err2 != nil {
		return minutesPerDay
	}
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return minutesPerDay
	}
	return days * minutesPerDay
}

// dateLabel renders a date-only string as "Jun 17", falling back to the raw
// input when it does not parse.
func dateLabel(date string) string {
	d, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format(dateLabelLayout)
}
