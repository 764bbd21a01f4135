// Package calendar renders a month grid of habit completions.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	dates "tableflip.dev/habit/pkg/calendar"
)

// Header is the weekday row, Sunday first.
const Header = "Su Mo Tu We Th Fr Sa"

// Width is the rendered width of one week.
var Width = len(Header)

// Day describes a single day rendered in the calendar.
type Day struct {
	Day        int
	Done       bool
	IsToday    bool
	IsSelected bool
}

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	DoneStyle     lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// Render produces a multi-line calendar string for month of year. days maps
// day-of-month to its state; missing days render as not done.
func Render(year int, month time.Month, days []Day, opts Options) string {
	daysInMonth := dates.DaysInMonth(year, month)

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(Header))
	}

	first, _ := dates.FirstOfMonth(year, month)
	startOffset := int(first)
	totalCells := startOffset + daysInMonth
	rows := (totalCells + dates.DaysInWeek - 1) / dates.DaysInWeek

	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < dates.DaysInWeek; col++ {
			cellIdx := row*dates.DaysInWeek + col
			day := cellIdx - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(byDay[day], day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.EmptyStyle
	switch {
	case info.Done && info.IsToday:
		style = opts.DoneStyle.Bold(true)
	case info.Done:
		style = opts.DoneStyle
	case info.IsToday:
		style = opts.TodayStyle
	}
	if info.IsSelected {
		if info.Done || info.IsToday {
			style = style.Background(opts.SelectedStyle.GetBackground())
		} else {
			style = opts.SelectedStyle
		}
	}
	return style.Render(text)
}

// Month builds the Day list for a month from its completions, indexed by
// day-of-month minus one.
func Month(done []bool, today, selected int) []Day {
	days := make([]Day, len(done))
	for i := range done {
		day := i + 1
		days[i] = Day{
			Day:        day,
			Done:       done[i],
			IsToday:    day == today,
			IsSelected: day == selected,
		}
	}
	return days
}

// DefaultOptions returns the styling used for calendar rendering. Completed
// days are green, today is red and the cursor sits on a grey background.
func DefaultOptions() Options {
	header := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true)
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	done := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	today := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	selected := lipgloss.NewStyle().Background(lipgloss.Color("242")).Foreground(lipgloss.Color("15"))
	return Options{
		HeaderStyle:   header,
		EmptyStyle:    empty,
		DoneStyle:     done,
		TodayStyle:    today,
		SelectedStyle: selected,
		ShowHeader:    true,
	}
}
