package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventhorizon/models"
	"eventhorizon/services/analytics"
	"eventhorizon/services/calendar"

	"github.com/gin-gonic/gin"
)

type fakeCalendarService struct {
	events   []models.CalendarEvent
	holidays []models.HolidayEvent
	blocks   []analytics.FreeBlock
	insights *models.CalendarInsights
	err      error

	gotWindow analytics.Window
}

func (f *fakeCalendarService) GetEvents(ctx context.Context, start, end string) ([]models.CalendarEvent, error) {
	return f.events, f.err
}

func (f *fakeCalendarService) GetHolidays(ctx context.Context, from string) ([]models.HolidayEvent, error) {
	return f.holidays, f.err
}

func (f *fakeCalendarService) FreeBlocks(ctx context.Context, start, end string, w analytics.Window) ([]analytics.FreeBlock, error) {
	f.gotWindow = w
	return f.blocks, f.err
}

func (f *fakeCalendarService) Insights(ctx context.Context, start, end string, w analytics.Window) (*models.CalendarInsights, error) {
	f.gotWindow = w
	return f.insights, f.err
}

func (f *fakeCalendarService) Exclusions() calendar.ExclusionSummary {
	return calendar.DefaultExclusionPolicy().Summary()
}

func calendarRouter(svc calendar.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCalendarHandler(svc)
	r := gin.New()
	r.GET("/get-events", h.GetEvents)
	r.GET("/get-holidays", h.GetHolidays)
	r.GET("/get-free-blocks", h.GetFreeBlocks)
	r.GET("/get-calendar-insights", h.GetInsights)
	r.GET("/excluded-titles", h.GetExcludedTitles)
	return r
}

func TestGetEventsRequiresRange(t *testing.T) {
	r := calendarRouter(&fakeCalendarService{})

	for _, path := range []string{"/get-events", "/get-events?start=2026-06-17", "/get-events?end=2026-06-17"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, w.Code)
		}
	}
}

func TestGetEventsInvalidDate(t *testing.T) {
	r := calendarRouter(&fakeCalendarService{err: calendar.ErrInvalidDate})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get-events?start=bogus&end=2026-06-17", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetFreeBlocksWindowOverrides(t *testing.T) {
	svc := &fakeCalendarService{}
	r := calendarRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/get-free-blocks?start=2026-06-17&end=2026-06-17&window_start=08:00&window_end=17:00&min_block=45", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	want := analytics.Window{StartMinute: 8 * 60, EndMinute: 17 * 60, MinBlockMinutes: 45}
	if svc.gotWindow != want {
		t.Errorf("window = %+v, want %+v", svc.gotWindow, want)
	}
}

func TestGetFreeBlocksRejectsBadOverrides(t *testing.T) {
	r := calendarRouter(&fakeCalendarService{})

	for _, path := range []string{
		"/get-free-blocks?start=2026-06-17&end=2026-06-17&window_start=25:00",
		"/get-free-blocks?start=2026-06-17&end=2026-06-17&min_block=-5",
		"/get-free-blocks?start=2026-06-17&end=2026-06-17&min_block=lots",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, w.Code)
		}
	}
}

func TestGetFreeBlocksInvalidWindowIsBadRequest(t *testing.T) {
	svc := &fakeCalendarService{err: &analytics.InvalidWindowError{StartMinute: 18 * 60, EndMinute: 6 * 60}}
	r := calendarRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get-free-blocks?start=2026-06-17&end=2026-06-17", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetFreeBlocksICSFormat(t *testing.T) {
	svc := &fakeCalendarService{blocks: []analytics.FreeBlock{
		{Date: "2026-06-17", StartMinute: 6 * 60, DurationMinutes: 180},
	}}
	r := calendarRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get-free-blocks?start=2026-06-17&end=2026-06-17&format=ics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("Content-Type = %q, want text/calendar", ct)
	}
	if !strings.Contains(w.Body.String(), "BEGIN:VEVENT") {
		t.Error("expected a VEVENT in the feed")
	}
}

func TestGetInsightsPassesThrough(t *testing.T) {
	svc := &fakeCalendarService{insights: &models.CalendarInsights{
		TotalEvents:  2,
		TotalMinutes: 90,
		MeetingTypes: map[string]int{"1:1": 1, "Other": 1},
	}}
	r := calendarRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get-calendar-insights?start=2026-06-15&end=2026-06-21", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var got models.CalendarInsights
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if got.TotalEvents != 2 || got.MeetingTypes["1:1"] != 1 {
		t.Errorf("unexpected insights payload: %+v", got)
	}
}

func TestGetExcludedTitles(t *testing.T) {
	r := calendarRouter(&fakeCalendarService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/excluded-titles", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		ExcludedTitles calendar.ExclusionSummary `json:"excluded_titles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(body.ExcludedTitles.ExactMatches) != 5 {
		t.Errorf("exact_matches has %d entries, want 5", len(body.ExcludedTitles.ExactMatches))
	}
	for _, title := range body.ExcludedTitles.CaseInsensitivePartialMatches {
		if title != "Commute" && title != "OOO" {
			t.Errorf("unexpected case-insensitive title %q", title)
		}
	}
}
