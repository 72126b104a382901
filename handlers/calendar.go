package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"eventhorizon/config"
	"eventhorizon/services/analytics"
	"eventhorizon/services/calendar"
	"eventhorizon/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler serves the Google Calendar proxy endpoints and the
// free-block/insight surface built on top of them.
type CalendarHandler struct {
	Svc calendar.Service
}

// NewCalendarHandler constructs a CalendarHandler.
func NewCalendarHandler(svc calendar.Service) *CalendarHandler {
	return &CalendarHandler{Svc: svc}
}

// Index handles GET /: a map of the API surface.
func (h *CalendarHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Event Horizon Calendar & Todos API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"get-events":            "/get-events?start=YYYY-MM-DD&end=YYYY-MM-DD",
			"get-holidays":          "/get-holidays?date=YYYY-MM-DD",
			"get-free-blocks":       "/get-free-blocks?start=YYYY-MM-DD&end=YYYY-MM-DD",
			"get-calendar-insights": "/get-calendar-insights?start=YYYY-MM-DD&end=YYYY-MM-DD",
			"excluded-titles":       "/excluded-titles",
			"get-todos":             "/get-todos",
			"get-horizon":           "/get-horizon?horizon_date=YYYY-MM-DD",
			"get-bookmark-events":   "/get-bookmark-events?date=YYYY-MM-DD",
			"get-weekly-meal-plan":  "/get-weekly-meal-plan?week_start_date=YYYY-MM-DD",
		},
	})
}

// Health handles GET /health with the latest dependency snapshot.
func (h *CalendarHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}

// GetExcludedTitles handles GET /excluded-titles.
func (h *CalendarHandler) GetExcludedTitles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":         "Event titles that are filtered out from calendar results",
		"excluded_titles": h.Svc.Exclusions(),
	})
}

// GetEvents handles GET /get-events?start&end.
func (h *CalendarHandler) GetEvents(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end query parameters are required"})
		return
	}

	events, err := h.Svc.GetEvents(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("failed to fetch calendar events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch calendar events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetHolidays handles GET /get-holidays?date.
func (h *CalendarHandler) GetHolidays(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	holidays, err := h.Svc.GetHolidays(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("failed to fetch holidays", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch holidays"})
		return
	}
	c.JSON(http.StatusOK, holidays)
}

// GetFreeBlocks handles GET /get-free-blocks. The window defaults come from
// configuration and can be overridden per request with window_start,
// window_end (HH:MM) and min_block (minutes). format=ics returns an
// iCalendar feed instead of JSON.
func (h *CalendarHandler) GetFreeBlocks(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end query parameters are required"})
		return
	}

	window, err := windowFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blocks, err := h.Svc.FreeBlocks(c.Request.Context(), start, end, window)
	if err != nil {
		h.freeBlockError(c, err)
		return
	}

	if c.Query("format") == "ics" {
		loc, locErr := time.LoadLocation(config.AppConfig.Timezone)
		if locErr != nil {
			utils.GetLogger().Error("failed to load timezone", zap.Error(locErr))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render calendar feed"})
			return
		}
		feed, icsErr := calendar.RenderFreeBlocksICS(blocks, loc)
		if icsErr != nil {
			utils.GetLogger().Error("failed to render ics feed", zap.Error(icsErr))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render calendar feed"})
			return
		}
		c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
		return
	}

	c.JSON(http.StatusOK, calendar.FormatFreeBlocks(blocks))
}

// GetInsights handles GET /get-calendar-insights?start&end.
func (h *CalendarHandler) GetInsights(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end query parameters are required"})
		return
	}

	window, err := windowFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	insights, err := h.Svc.Insights(c.Request.Context(), start, end, window)
	if err != nil {
		h.freeBlockError(c, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

func (h *CalendarHandler) freeBlockError(c *gin.Context, err error) {
	var invalidWindow *analytics.InvalidWindowError
	var invalidEvent *analytics.InvalidEventError
	switch {
	case errors.Is(err, calendar.ErrInvalidDate),
		errors.As(err, &invalidWindow),
		errors.As(err, &invalidEvent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("failed to compute free blocks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute free blocks"})
	}
}

// windowFromQuery builds the scan window from config defaults and any
// per-request overrides.
func windowFromQuery(c *gin.Context) (analytics.Window, error) {
	w := analytics.Window{
		MinBlockMinutes: config.AppConfig.MinBlockMinutes,
	}
	var err error
	if w.StartMinute, err = utils.ParseClock(config.AppConfig.DayWindowStart); err != nil {
		w.StartMinute = 6 * 60
	}
	if w.EndMinute, err = utils.ParseClock(config.AppConfig.DayWindowEnd); err != nil {
		w.EndMinute = 18 * 60
	}

	if raw := c.Query("window_start"); raw != "" {
		if w.StartMinute, err = utils.ParseClock(raw); err != nil {
			return w, fmt.Errorf("window_start: %w", err)
		}
	}
	if raw := c.Query("window_end"); raw != "" {
		if w.EndMinute, err = utils.ParseClock(raw); err != nil {
			return w, fmt.Errorf("window_end: %w", err)
		}
	}
	if raw := c.Query("min_block"); raw != "" {
		v, convErr := strconv.Atoi(raw)
		if convErr != nil || v < 0 {
			return w, errors.New("min_block must be a non-negative integer")
		}
		w.MinBlockMinutes = v
	}
	return w, nil
}
