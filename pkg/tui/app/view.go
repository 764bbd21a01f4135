package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/habit/pkg/app"
	"tableflip.dev/habit/pkg/calendar"
	"tableflip.dev/habit/pkg/streak"
	calview "tableflip.dev/habit/pkg/tui/components/calendar"
	"tableflip.dev/habit/pkg/tui/components/menu"
)

const (
	// BarWidth is the width of the progress bar.
	BarWidth = 49
	escHint  = "<- Esc"

	helpWidth  = 56
	helpHeight = 22
)

var weekLetters = [calendar.DaysInWeek]rune{'S', 'M', 'T', 'W', 'T', 'F', 'S'}

func fullMessage(capacity int) string {
	return fmt.Sprintf("Cannot have more than %d habits.", capacity)
}

// View renders the current screen.
func (m *Model) View() string {
	if m.tooSmall() && m.mode == modeNormal {
		return m.place(lipgloss.JoinVertical(lipgloss.Center,
			"Terminal too small!",
			"Please resize window.",
		))
	}

	switch m.mode {
	case modeCalendar:
		return m.place(m.renderCalendar())
	case modeInsert:
		return m.place(m.renderInsert())
	case modeConfirm:
		return m.place(m.renderConfirm())
	case modeHelp:
		return m.place(m.help.View())
	}
	return m.renderMain()
}

// place centers content on the screen once its size is known.
func (m *Model) place(content string) string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return content
	}
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderMain() string {
	year, selected := m.win.SelectedTarget()
	completed := 0
	if year == m.win.Year() {
		completed = m.ledger.CompletedOn(selected)
	}

	var lines []string
	lines = append(lines, " "+m.renderBar(completed, m.ledger.Len()), "")

	if m.ledger.Len() == 0 {
		lines = append(lines, m.theme.Habit.Empty.Render("No habits found. Press 1 to add."))
	} else {
		strip := m.win.StripDays()
		var labels [calendar.DaysInWeek]rune
		for i, d := range strip {
			labels[i] = weekLetters[d.Weekday()]
		}
		lines = append(lines, menu.WeekLabels(labels, m.theme))
		lines = append(lines, menu.List{Items: m.habitRows(), Highlight: m.highlight}.Render(m.theme))
	}
	lines = append(lines, "", m.theme.Status.Render(m.status))
	body := strings.Join(lines, "\n")

	actions := menu.List{Items: menu.Actions, Highlight: -1, Horizontal: true, Gap: menu.ActionGap}.Render(m.theme)
	if m.termWidth == 0 || m.termHeight == 0 {
		return body + "\n\n" + actions
	}

	rule := m.theme.Actions.Rule.Render(strings.Repeat("─", m.termWidth))
	bar := lipgloss.JoinVertical(lipgloss.Left,
		rule,
		lipgloss.PlaceHorizontal(m.termWidth, lipgloss.Center, actions),
		rule,
	)
	bodyHeight := m.termHeight - lipgloss.Height(bar) - 1
	if bodyHeight < lipgloss.Height(body) {
		bodyHeight = lipgloss.Height(body)
	}
	return lipgloss.Place(m.termWidth, bodyHeight, lipgloss.Center, lipgloss.Center, body) + "\n" + bar
}

func (m *Model) habitRows() []menu.Item {
	ref := m.win.Reference()
	strip := m.win.StripDays()
	column := calendar.DaysInWeek - 1 - m.win.Offset()

	items := make([]menu.Item, 0, m.ledger.Len())
	for _, h := range m.ledger.All() {
		n, band := streak.Of(h, ref)
		row := menu.HabitRow{
			Name:   h.Name,
			Streak: n,
			Band:   band,
			Column: column,
		}
		for i, d := range strip {
			row.Cells[i] = d.Year == h.Year && h.Done(d.Index)
		}
		items = append(items, row)
	}
	return items
}

func (m *Model) renderBar(completed, total int) string {
	if total == 0 {
		return m.theme.Bar.Empty.Render(strings.Repeat("-", BarWidth))
	}
	filled := completed * BarWidth / total
	label := fmt.Sprintf(" %d%% ", app.Percent(completed, total))
	start := (BarWidth - len(label)) / 2

	labelStyle := m.theme.Bar.Label
	if completed == total {
		labelStyle = m.theme.Bar.Complete
	}

	var b strings.Builder
	for i := 0; i < BarWidth; i++ {
		if i == start {
			b.WriteString(labelStyle.Render(label))
			i += len(label) - 1
			continue
		}
		if i < filled {
			b.WriteString(m.theme.Bar.Filled.Render("-"))
		} else {
			b.WriteString(m.theme.Bar.Empty.Render("-"))
		}
	}
	return b.String()
}

func (m *Model) renderCalendar() string {
	h, err := m.ledger.Get(m.highlight)
	if err != nil {
		return ""
	}
	now := m.win.Now()
	month := now.Month()
	first := calendar.YearDay(now.Year(), month, 1)
	n := calendar.DaysInMonth(now.Year(), month)

	done := make([]bool, n)
	for d := 0; d < n; d++ {
		done[d] = h.Year == now.Year() && h.Done(first+d)
	}
	grid := calview.Render(now.Year(), month, calview.Month(done, now.Day(), m.win.CalendarSelected()), calview.DefaultOptions())

	total := 0
	if h.Year == now.Year() {
		total = h.DoneInMonth(month)
	}

	modal := m.theme.Modal
	lines := []string{
		modal.Hint.Render(escHint),
		modal.Title.Render(h.Name),
		modal.Body.Render(fmt.Sprintf("%s %d", month, now.Year())),
		"",
		grid,
		modal.Hint.Render(strings.Repeat("-", calview.Width)),
		modal.Hint.Render(fmt.Sprintf("Done: %d", total)),
	}
	if m.status != "" {
		lines = append(lines, m.theme.Status.Render(m.status))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderInsert() string {
	title := "Add habit"
	if m.action == actionRename {
		title = "Rename habit"
	}
	modal := m.theme.Modal
	field := lipgloss.NewStyle().Width(calview.Width + 6).Render(m.input.View())
	row := lipgloss.JoinHorizontal(lipgloss.Top, field, " ", modal.Hint.Render(escHint))
	return modal.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		modal.Title.Render(title),
		row,
	))
}

func (m *Model) renderConfirm() string {
	h, err := m.ledger.Get(m.highlight)
	if err != nil {
		return ""
	}
	modal := m.theme.Modal
	body := lipgloss.JoinVertical(lipgloss.Center,
		modal.Title.Render(" CONFIRMATION "),
		"",
		modal.Body.Render("Are you sure you want to delete:"),
		modal.Name.Render(fmt.Sprintf("'%s'?", h.Name)),
		"",
		modal.Body.Render("[Y]es")+"     "+"[N]o",
	)
	return modal.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, modal.Hint.Render(escHint), body))
}
