package calendar

import (
	"fmt"
	"time"

	"eventhorizon/services/analytics"
	"eventhorizon/utils"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// RenderFreeBlocksICS serializes free blocks as an iCalendar feed, one
// VEVENT per block, so other calendar apps can overlay the open time.
// Times are emitted in the given location.
func RenderFreeBlocksICS(blocks []analytics.FreeBlock, loc *time.Location) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//eventhorizon//free-blocks//EN")

	now := time.Now().UTC()
	for _, b := range blocks {
		day, err := time.ParseInLocation(utils.DateLayout, b.Date, loc)
		if err != nil {
			return "", fmt.Errorf("parsing block date %q: %w", b.Date, err)
		}
		start := day.Add(time.Duration(b.StartMinute) * time.Minute)
		end := start.Add(time.Duration(b.DurationMinutes) * time.Minute)

		ev := cal.AddEvent(uuid.NewString())
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(fmt.Sprintf("Free block (%s)", utils.FormatSpan(b.DurationMinutes)))
		ev.SetDescription("Unscheduled time found by eventhorizon")
	}
	return cal.Serialize(), nil
}
