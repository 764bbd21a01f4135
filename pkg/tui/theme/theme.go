package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Streak  StreakTheme
	Habit   HabitTheme
	Bar     BarTheme
	Actions ActionTheme
	Modal   ModalTheme
	Status  lipgloss.Style
	Warning lipgloss.Style
}

// StreakTheme styles the streak column by band.
type StreakTheme struct {
	Inactive  lipgloss.Style
	Building  lipgloss.Style
	Sustained lipgloss.Style
}

// HabitTheme styles habit rows and the week strip.
type HabitTheme struct {
	Name        lipgloss.Style
	Highlighted lipgloss.Style
	Cell        lipgloss.Style
	CellActive  lipgloss.Style
	Label       lipgloss.Style
	LabelToday  lipgloss.Style
	Empty       lipgloss.Style
}

// BarTheme styles the completion progress bar.
type BarTheme struct {
	Filled   lipgloss.Style
	Empty    lipgloss.Style
	Label    lipgloss.Style
	Complete lipgloss.Style
}

// ActionTheme styles the bottom action bar.
type ActionTheme struct {
	Rule  lipgloss.Style
	Key   lipgloss.Style
	Label lipgloss.Style
}

// ModalTheme styles centered boxes: prompts, confirmation and the month
// calendar.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Hint  lipgloss.Style
	Name  lipgloss.Style
}

// Dimmed is the grey used for everything in the background.
var Dimmed = lipgloss.Color("242")

// Default returns the built-in theme used across the UI.
func Default() Theme {
	dim := lipgloss.NewStyle().Foreground(Dimmed)
	light := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	return Theme{
		Streak: StreakTheme{
			Inactive:  dim,
			Building:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			Sustained: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		},
		Habit: HabitTheme{
			Name:        dim,
			Highlighted: lipgloss.NewStyle(),
			Cell:        dim,
			CellActive:  lipgloss.NewStyle().Bold(true),
			Label:       dim,
			LabelToday:  lipgloss.NewStyle(),
			Empty:       dim.Italic(true),
		},
		Bar: BarTheme{
			Filled:   light,
			Empty:    dim,
			Label:    dim,
			Complete: light.Bold(true),
		},
		Actions: ActionTheme{
			Rule:  dim,
			Key:   lipgloss.NewStyle().Bold(true),
			Label: lipgloss.NewStyle(),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Dimmed).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  dim,
			Hint:  dim,
			Name:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		},
		Status:  dim,
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
