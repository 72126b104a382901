// Package calendar proxies Google Calendar reads: fetching, blocker-title
// exclusion, timezone localization and display formatting, plus the
// free-block and insight computations layered on top. Decorated strings are
// produced only at the response boundary; every computation downstream of
// the fetch consumes structured values.
package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"eventhorizon/config"
	"eventhorizon/models"
	"eventhorizon/services/analytics"
	"eventhorizon/utils"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
)

// ErrInvalidDate marks malformed or reversed date parameters. Handlers map
// it to a 400; everything else from this package is a provider failure.
var ErrInvalidDate = errors.New("invalid date")

// Service is the calendar read surface consumed by handlers, the warm
// worker and the analytics CLI.
type Service interface {
	GetEvents(ctx context.Context, start, end string) ([]models.CalendarEvent, error)
	GetHolidays(ctx context.Context, from string) ([]models.HolidayEvent, error)
	FreeBlocks(ctx context.Context, start, end string, w analytics.Window) ([]analytics.FreeBlock, error)
	Insights(ctx context.Context, start, end string, w analytics.Window) (*models.CalendarInsights, error)
	Exclusions() ExclusionSummary
}

// DefaultCalendarService implements Service against the Google Calendar API.
type DefaultCalendarService struct {
	Client            *gcal.Service
	Cache             utils.Cache // nil disables response caching
	Policy            ExclusionPolicy
	Loc               *time.Location
	CalendarID        string
	HolidayCalendarID string
	TTL               time.Duration

	// Now is the clock used for time-until labels; overridable in tests.
	Now func() time.Time
}

// NewDefaultCalendarService wires a service from the loaded configuration.
func NewDefaultCalendarService(client *gcal.Service, cache utils.Cache) (*DefaultCalendarService, error) {
	loc, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", config.AppConfig.Timezone, err)
	}
	return &DefaultCalendarService{
		Client:            client,
		Cache:             cache,
		Policy:            DefaultExclusionPolicy(),
		Loc:               loc,
		CalendarID:        config.AppConfig.CalendarID,
		HolidayCalendarID: config.AppConfig.HolidayCalendarID,
		TTL:               time.Duration(config.AppConfig.CacheTTLSeconds) * time.Second,
		Now:               time.Now,
	}, nil
}

// Exclusions returns the active blocker-title policy.
func (s *DefaultCalendarService) Exclusions() ExclusionSummary {
	return s.Policy.Summary()
}

// GetEvents lists the primary calendar between two dates (inclusive),
// drops blocker titles and formats the rest for display. Results are
// memoized by the date pair for the configured TTL.
func (s *DefaultCalendarService) GetEvents(ctx context.Context, start, end string) ([]models.CalendarEvent, error) {
	from, to, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}

	key := utils.CalendarCachePrefix + start + ":" + end
	if s.Cache != nil {
		if raw, ok := s.Cache.Get(ctx, key); ok {
			var cached []models.CalendarEvent
			if err := json.Unmarshal(raw, &cached); err == nil {
				utils.GetLogger().Debug("calendar cache hit", zap.String("key", key))
				return cached, nil
			}
		}
	}

	items, err := s.listEvents(ctx, s.CalendarID, from, to)
	if err != nil {
		return nil, err
	}

	now := s.now()
	formatted := []models.CalendarEvent{}
	for _, ev := range items {
		if s.Policy.Exclude(ev.Summary) {
			continue
		}
		fe, ok := s.formatEvent(ev, now)
		if !ok {
			continue
		}
		formatted = append(formatted, fe)
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(formatted); err == nil {
			s.Cache.Set(ctx, key, raw, s.TTL)
		}
	}
	return formatted, nil
}

// GetHolidays lists the public US holiday calendar for the 365 days
// following the given date.
func (s *DefaultCalendarService) GetHolidays(ctx context.Context, from string) ([]models.HolidayEvent, error) {
	day, err := time.ParseInLocation(utils.DateLayout, from, s.Loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, from)
	}
	start := day
	end := day.AddDate(0, 0, 365).Add(24*time.Hour - time.Second)

	key := utils.HolidayCachePrefix + from
	if s.Cache != nil {
		if raw, ok := s.Cache.Get(ctx, key); ok {
			var cached []models.HolidayEvent
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	items, err := s.listEvents(ctx, s.HolidayCalendarID, start, end)
	if err != nil {
		return nil, err
	}

	now := s.now()
	holidays := []models.HolidayEvent{}
	for _, ev := range items {
		switch {
		case ev.Start == nil:
			continue
		case ev.Start.Date != "":
			holidays = append(holidays, models.HolidayEvent{
				Name:      ev.Summary,
				Date:      dateLabel(ev.Start.Date),
				TimeUntil: TimeUntilAllDay(now, ev.Start.Date, s.Loc),
			})
		case ev.Start.DateTime != "":
			t, err := time.Parse(time.RFC3339, ev.Start.DateTime)
			if err != nil {
				continue
			}
			holidays = append(holidays, models.HolidayEvent{
				Name:      ev.Summary,
				Date:      t.In(s.Loc).Format(dateLabelLayout),
				TimeUntil: TimeUntil(now, t),
			})
		}
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(holidays); err == nil {
			s.Cache.Set(ctx, key, raw, s.TTL)
		}
	}
	return holidays, nil
}

// FreeBlocks fetches the range, converts timed events to minute intervals
// and runs the per-day gap scan over every day in the range, so event-free
// days report the full window. All-day events occupy no clock time and are
// skipped.
func (s *DefaultCalendarService) FreeBlocks(ctx context.Context, start, end string, w analytics.Window) ([]analytics.FreeBlock, error) {
	from, to, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}
	items, err := s.listEvents(ctx, s.CalendarID, from, to)
	if err != nil {
		return nil, err
	}
	intervals, _ := s.structuredEvents(items)
	return analytics.FindFreeBlocksInRange(intervals, start, end, w)
}

// Insights summarizes a range: counts by meeting type and time of day plus
// the free blocks, computed from one fetch.
func (s *DefaultCalendarService) Insights(ctx context.Context, start, end string, w analytics.Window) (*models.CalendarInsights, error) {
	from, to, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}
	items, err := s.listEvents(ctx, s.CalendarID, from, to)
	if err != nil {
		return nil, err
	}
	intervals, summaries := s.structuredEvents(items)

	blocks, err := analytics.FindFreeBlocksInRange(intervals, start, end, w)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, ev := range summaries {
		total += ev.DurationMinutes
	}
	return &models.CalendarInsights{
		TotalEvents:      len(summaries),
		TotalMinutes:     total,
		MeetingTypes:     analytics.MeetingTypeCounts(summaries),
		TimeDistribution: analytics.TimeDistribution(summaries),
		FreeBlocks:       FormatFreeBlocks(blocks),
	}, nil
}

// parseRange validates a YYYY-MM-DD pair and widens it to day bounds in the
// configured timezone.
func (s *DefaultCalendarService) parseRange(start, end string) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation(utils.DateLayout, start, s.Loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, start)
	}
	to, err := time.ParseInLocation(utils.DateLayout, end, s.Loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, end)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start %s after end %s", ErrInvalidDate, start, end)
	}
	return from, to.Add(24*time.Hour - time.Second), nil
}

// listEvents pages through a calendar between two instants, expanded to
// single events in start order.
func (s *DefaultCalendarService) listEvents(ctx context.Context, calendarID string, from, to time.Time) ([]*gcal.Event, error) {
	items := []*gcal.Event{}
	pageToken := ""
	for {
		call := s.Client.Events.List(calendarID).
			TimeMin(from.Format(time.RFC3339)).
			TimeMax(to.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		res, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("listing calendar %s: %w", calendarID, err)
		}
		items = append(items, res.Items...)
		if res.NextPageToken == "" {
			return items, nil
		}
		pageToken = res.NextPageToken
	}
}

// structuredEvents converts non-excluded timed events into minute intervals
// for the gap scan and summaries for the insight counters. All-day events
// are skipped: they carry no clock window.
func (s *DefaultCalendarService) structuredEvents(items []*gcal.Event) ([]analytics.Event, []analytics.EventSummary) {
	intervals := []analytics.Event{}
	summaries := []analytics.EventSummary{}
	for _, ev := range items {
		if s.Policy.Exclude(ev.Summary) {
			continue
		}
		if ev.Start == nil || ev.Start.DateTime == "" || ev.End == nil || ev.End.DateTime == "" {
			continue
		}
		startT, err := time.Parse(time.RFC3339, ev.Start.DateTime)
		if err != nil {
			continue
		}
		endT, err := time.Parse(time.RFC3339, ev.End.DateTime)
		if err != nil {
			continue
		}
		local := startT.In(s.Loc)
		duration := int(endT.Sub(startT).Minutes())
		if duration < 0 {
			duration = -duration
		}
		intervals = append(intervals, analytics.Event{
			Date:            local.Format(utils.DateLayout),
			StartMinute:     local.Hour()*60 + local.Minute(),
			DurationMinutes: duration,
		})
		summaries = append(summaries, analytics.EventSummary{
			Title:           ev.Summary,
			StartHour:       local.Hour(),
			DurationMinutes: duration,
		})
	}
	return intervals, summaries
}

// formatEvent renders one Google event for the events endpoint. The second
// return is false for events with no usable start.
func (s *DefaultCalendarService) formatEvent(ev *gcal.Event, now time.Time) (models.CalendarEvent, bool) {
	if ev.Start == nil {
		return models.CalendarEvent{}, false
	}

	attendees := []string{}
	for _, a := range ev.Attendees {
		if a.Email != "" {
			attendees = append(attendees, a.Email)
		}
	}
	organizer := ""
	if ev.Organizer != nil {
		organizer = ev.Organizer.Email
	}

	// All-day events carry date-only bounds and a day-granular duration.
	if ev.Start.Date != "" {
		endDate := ev.Start.Date
		if ev.End != nil && ev.End.Date != "" {
			endDate = ev.End.Date
		}
		return models.CalendarEvent{
			Event:           ev.Summary,
			Date:            dateLabel(ev.Start.Date),
			StartTime:       "All Day",
			EndTime:         "All Day",
			DurationMinutes: allDayDuration(ev.Start.Date, endDate),
			TimeUntil:       TimeUntilAllDay(now, ev.Start.Date, s.Loc),
			Attendees:       attendees,
			OrganizerEmail:  organizer,
			AllDay:          true,
			Notes:           ev.Description,
		}, true
	}

	if ev.Start.DateTime == "" || ev.End == nil || ev.End.DateTime == "" {
		return models.CalendarEvent{}, false
	}
	startT, err := time.Parse(time.RFC3339, ev.Start.DateTime)
	if err != nil {
		return models.CalendarEvent{}, false
	}
	endT, err := time.Parse(time.RFC3339, ev.End.DateTime)
	if err != nil {
		return models.CalendarEvent{}, false
	}
	duration := int(endT.Sub(startT).Minutes())
	if duration < 0 {
		duration = -duration
	}
	return models.CalendarEvent{
		Event:           ev.Summary,
		Date:            startT.In(s.Loc).Format(dateLabelLayout),
		StartTime:       startT.In(s.Loc).Format(clockLayout),
		EndTime:         endT.In(s.Loc).Format(clockLayout),
		DurationMinutes: duration,
		TimeUntil:       TimeUntil(now, startT),
		Attendees:       attendees,
		OrganizerEmail:  organizer,
		AllDay:          false,
		Notes:           ev.Description,
	}, true
}

func (s *DefaultCalendarService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
