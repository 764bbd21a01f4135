// Package menu renders the main screen's selectable rows: habits down the
// middle and actions along the bottom.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/habit/pkg/calendar"
	"tableflip.dev/habit/pkg/habit"
	"tableflip.dev/habit/pkg/streak"
	"tableflip.dev/habit/pkg/tui/theme"
)

const (
	// CheckboxOffset is the column where the week strip starts.
	CheckboxOffset = 30
	// RowWidth is the full width of a habit row.
	RowWidth = CheckboxOffset + calendar.DaysInWeek*3
	// ActionGap separates actions in the action bar.
	ActionGap = 4
)

// Item is one entry of a menu.
type Item interface {
	Render(th theme.Theme, highlighted bool) string
}

// HabitRow is a habit with its streak and the seven strip cells.
type HabitRow struct {
	Name   string
	Streak int
	Band   streak.Band
	// Cells holds the strip, oldest first.
	Cells [calendar.DaysInWeek]bool
	// Column is the strip cell under the cursor.
	Column int
}

func (r HabitRow) Render(th theme.Theme, highlighted bool) string {
	var b strings.Builder
	switch r.Band {
	case streak.Sustained:
		b.WriteString(th.Streak.Sustained.Render(fmt.Sprintf(" %d ", r.Streak)))
	case streak.Building:
		b.WriteString(th.Streak.Building.Render(fmt.Sprintf(" %d ", r.Streak)))
	default:
		b.WriteString(th.Streak.Inactive.Render("  -  "))
	}

	name := truncate.String(r.Name, habit.NameMaxLength)
	if highlighted {
		b.WriteString(th.Habit.Highlighted.Render(name))
	} else {
		b.WriteString(th.Habit.Name.Render(name))
	}

	if pad := CheckboxOffset - lipgloss.Width(b.String()); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}

	for i, done := range r.Cells {
		c := "."
		if done {
			c = "x"
		}
		cell := fmt.Sprintf(" %s ", c)
		if highlighted && i == r.Column {
			b.WriteString(th.Habit.CellActive.Render(cell))
		} else {
			b.WriteString(th.Habit.Cell.Render(cell))
		}
	}
	return b.String()
}

// Action is a numbered command in the action bar.
type Action struct {
	Key   string
	Label string
}

func (a Action) Render(th theme.Theme, highlighted bool) string {
	key := th.Actions.Key
	if highlighted {
		key = key.Reverse(true)
	}
	return key.Render(a.Key) + " " + th.Actions.Label.Render(a.Label)
}

// Actions is the main screen action bar.
var Actions = []Item{
	Action{Key: "1", Label: "Add"},
	Action{Key: "2", Label: "Delete"},
	Action{Key: "3", Label: "Rename"},
	Action{Key: "4", Label: "Calendar"},
	Action{Key: "5", Label: "Quit"},
}

// List renders items one per line, or on one line separated by Gap spaces
// when Horizontal is set. Highlight is the index of the highlighted item, -1
// for none.
type List struct {
	Items      []Item
	Highlight  int
	Horizontal bool
	Gap        int
}

func (l List) Render(th theme.Theme) string {
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = item.Render(th, i == l.Highlight)
	}
	if l.Horizontal {
		return strings.Join(parts, strings.Repeat(" ", l.Gap))
	}
	return strings.Join(parts, "\n")
}

// WeekLabels renders the weekday initials over the strip, today last and not
// dimmed.
func WeekLabels(days [calendar.DaysInWeek]rune, th theme.Theme) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", CheckboxOffset))
	for i, d := range days {
		label := fmt.Sprintf(" %c ", d)
		if i == len(days)-1 {
			b.WriteString(th.Habit.LabelToday.Render(label))
		} else {
			b.WriteString(th.Habit.Label.Render(label))
		}
	}
	return b.String()
}
