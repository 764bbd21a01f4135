package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/habit/pkg/app"
	"tableflip.dev/habit/pkg/streak"
)

func init() {
	color.NoColor = true
}

func TestBar(t *testing.T) {
	cases := []struct {
		completed, total int
		label            string
	}{
		{0, 0, " 0% "},
		{0, 3, " 0% "},
		{1, 3, " 33% "},
		{3, 3, " 100% "},
	}
	for _, tc := range cases {
		got := Bar(tc.completed, tc.total)
		if len(got) != BarWidth {
			t.Fatalf("Bar(%d,%d) is %d wide, want %d: %q", tc.completed, tc.total, len(got), BarWidth, got)
		}
		if !strings.Contains(got, tc.label) {
			t.Fatalf("Bar(%d,%d)=%q, missing %q", tc.completed, tc.total, got, tc.label)
		}
	}
}

func TestStreak(t *testing.T) {
	if got := Streak(0, streak.Inactive); got != "-" {
		t.Fatalf("expected dash, got %q", got)
	}
	if got := Streak(12, streak.Sustained); got != "12" {
		t.Fatalf("expected 12, got %q", got)
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Summary(app.Summary{
		Completed: 1,
		Habits: []app.HabitSummary{
			{Position: 1, Name: "Read", Streak: 3, Band: streak.Building, DoneToday: true, Longest: 5, ThisMonth: 3, Total: 9},
			{Position: 2, Name: "Walk"},
		},
	})
	out := buf.String()
	for _, want := range []string{" 50% ", "Streak", "Read", "Walk"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Summary(app.Summary{})
	if !strings.Contains(buf.String(), "No habits yet") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestMonth(t *testing.T) {
	days := make([]bool, 30)
	days[0], days[9] = true, true
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	// April 2023 starts on a Saturday.
	pp.Month(app.MonthView{Name: "Read", Year: 2023, Month: time.April, Days: days, Done: 2, Today: 10})

	lines := strings.Split(buf.String(), "\n")
	if !strings.Contains(lines[0], "Read April") {
		t.Fatalf("unexpected title %q", lines[0])
	}
	if lines[1] != WeekHeader {
		t.Fatalf("unexpected header %q", lines[1])
	}
	if lines[2] != strings.Repeat("   ", 6)+" 1" {
		t.Fatalf("unexpected first week %q", lines[2])
	}
	if lines[3] != " 2  3  4  5  6  7  8" {
		t.Fatalf("unexpected second week %q", lines[3])
	}
	if !strings.Contains(buf.String(), "Done: 2") {
		t.Fatalf("missing footer in:\n%s", buf.String())
	}
}
