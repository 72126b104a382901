package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"eventhorizon/models"
	"eventhorizon/utils"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	clockStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	durationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	urgentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	soonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	freeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pastStyle     = lipgloss.NewStyle().Faint(true)
)

func printStatus(w io.Writer, msg string) {
	fmt.Fprintln(w, statusStyle.Render(msg))
}

// renderEvents prints the event table: date with start clock, how soon the
// event is, title and duration.
func renderEvents(w io.Writer, events []models.CalendarEvent) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Date\tInterval\tEvent\tDuration")
	for _, ev := range events {
		fmt.Fprintf(tw, "%s (%s)\t%s\t%s\t%s\n",
			ev.Date,
			clockStyle.Render(ev.StartTime),
			intervalStyle(ev.TimeUntil).Render(ev.TimeUntil),
			ev.Event,
			durationStyle.Render(fmt.Sprintf("%d min", ev.DurationMinutes)),
		)
	}
	tw.Flush()
}

// intervalStyle picks a color by urgency: red inside two hours, yellow
// otherwise, dimmed for events already past.
func intervalStyle(label string) lipgloss.Style {
	if label == "Past" || label == "Unknown" {
		return pastStyle
	}
	fields := strings.Fields(strings.TrimPrefix(label, "In "))
	if len(fields) == 0 {
		return soonStyle
	}
	lead := fields[0]
	switch {
	case strings.HasSuffix(lead, "m"):
		return urgentStyle
	case strings.HasSuffix(lead, "h"):
		if h, err := strconv.Atoi(strings.TrimSuffix(lead, "h")); err == nil && h < 2 {
			return urgentStyle
		}
	}
	return soonStyle
}

// renderSummary prints the analytics block: totals, meeting types, time
// distribution and (for day/week ranges) the free blocks.
func renderSummary(w io.Writer, in *models.CalendarInsights, showFree bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("📊 Summary"))
	fmt.Fprintf(w, "Total events: %d (%s scheduled)\n", in.TotalEvents, utils.FormatSpan(in.TotalMinutes))

	printCounts(w, "Meeting types", in.MeetingTypes, in.TotalEvents)
	printCounts(w, "Time distribution", in.TimeDistribution, in.TotalEvents)

	if showFree && len(in.FreeBlocks) > 0 {
		fmt.Fprintln(w, headerStyle.Render("Free blocks"))
		for _, b := range in.FreeBlocks {
			fmt.Fprintf(w, "  • %s (at %s on %s)\n",
				freeStyle.Render(utils.FormatSpan(b.DurationMinutes)),
				freeStyle.Render(b.StartTime),
				freeStyle.Render(blockDateLabel(b.Date)),
			)
		}
	}
	fmt.Fprintln(w)
}

func printCounts(w io.Writer, title string, counts map[string]int, total int) {
	if total == 0 {
		return
	}
	fmt.Fprintln(w, headerStyle.Render(title))
	for _, name := range sortedKeys(counts) {
		n := counts[name]
		if n == 0 {
			continue
		}
		fmt.Fprintf(w, "  • %s: %d (%.1f%%)\n", name, n, float64(n)/float64(total)*100)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func blockDateLabel(date string) string {
	t, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}
