package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"eventhorizon/config"
	"eventhorizon/models"
	"eventhorizon/services/analytics"
	"eventhorizon/services/calendar"
	"eventhorizon/utils"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
)

var (
	searchTerm      string
	credentialsPath string
	tokenPath       string
)

var rootCmd = &cobra.Command{
	Use:   "calstats [time range]",
	Short: "Analyze your Google Calendar from the terminal",
	Long: `calstats fetches your upcoming Google Calendar events for a time range
and prints them alongside a summary: meeting types, when in the day your
meetings land, and the free blocks still open.

Time ranges: today, tomorrow, "day after", "this week", "next week",
"this month", "next month", or a month name (e.g. december).`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runAnalyze,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaultCreds := filepath.Join(xdg.ConfigHome, "calstats", "credentials.json")
	defaultToken := filepath.Join(xdg.ConfigHome, "calstats", "token.json")

	rootCmd.PersistentFlags().StringVar(&credentialsPath, "credentials", defaultCreds, "OAuth client credentials file")
	rootCmd.PersistentFlags().StringVar(&tokenPath, "token", defaultToken, "saved OAuth token file")
	rootCmd.Flags().StringVarP(&searchTerm, "search", "s", "", "only show events whose title contains this term")

	rootCmd.AddCommand(loginCmd)
}

// applyAuthPaths points the shared config at the CLI's credential files.
func applyAuthPaths() {
	config.LoadConfig()
	config.AppConfig.GoogleCredentialsFile = credentialsPath
	config.AppConfig.GoogleTokenFile = tokenPath
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	rangeName := strings.ToLower(strings.Join(args, " "))
	applyAuthPaths()

	loc, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", config.AppConfig.Timezone, err)
	}
	start, end, err := ResolveTimeRange(rangeName, time.Now().In(loc))
	if err != nil {
		return err
	}

	printStatus(cmd.OutOrStdout(), fmt.Sprintf("Fetching calendar events for %s...", rangeName))
	if searchTerm != "" {
		printStatus(cmd.OutOrStdout(), fmt.Sprintf("Filtering events containing: %s", searchTerm))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	client, err := utils.NewCalendarService(ctx)
	if err != nil {
		return fmt.Errorf("connecting to Google Calendar (run `calstats login` first?): %w", err)
	}
	svc, err := calendar.NewDefaultCalendarService(client, nil)
	if err != nil {
		return err
	}

	events, err := svc.GetEvents(ctx, start, end)
	if err != nil {
		return err
	}
	events = filterEvents(events, searchTerm)
	if len(events) == 0 {
		printStatus(cmd.OutOrStdout(), "No events found for the specified time range.")
		return nil
	}

	insights, err := svc.Insights(ctx, start, end, windowFromConfig())
	if err != nil {
		return err
	}
	renderSummary(cmd.OutOrStdout(), insights, ShowsFreeBlocks(rangeName))
	renderEvents(cmd.OutOrStdout(), events)
	return nil
}

// filterEvents drops all-day entries, events already underway or past, and
// anything not matching the search term.
func filterEvents(events []models.CalendarEvent, term string) []models.CalendarEvent {
	out := events[:0]
	for _, ev := range events {
		if ev.AllDay || ev.TimeUntil == "Past" {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(ev.Event), strings.ToLower(term)) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func windowFromConfig() analytics.Window {
	w := analytics.DefaultWindow()
	if v, err := utils.ParseClock(config.AppConfig.DayWindowStart); err == nil {
		w.StartMinute = v
	}
	if v, err := utils.ParseClock(config.AppConfig.DayWindowEnd); err == nil {
		w.EndMinute = v
	}
	if config.AppConfig.MinBlockMinutes > 0 {
		w.MinBlockMinutes = config.AppConfig.MinBlockMinutes
	}
	return w
}
