// Package streak classifies current streaks for display emphasis.
package streak

import (
	"tableflip.dev/habit/pkg/calendar"
	"tableflip.dev/habit/pkg/habit"
)

// Band groups streak lengths for rendering.
type Band int

const (
	// Inactive is a streak of zero.
	Inactive Band = iota
	// Building is a streak shorter than a week.
	Building
	// Sustained is a streak of a week or more.
	Sustained
)

// Classify returns the band for a streak of n days.
func Classify(n int) Band {
	switch {
	case n <= 0:
		return Inactive
	case n < calendar.DaysInWeek:
		return Building
	default:
		return Sustained
	}
}

// Of returns the current streak of h ending at reference and its band.
func Of(h *habit.Habit, reference int) (int, Band) {
	if h == nil {
		return 0, Inactive
	}
	n := h.CurrentStreak(reference)
	return n, Classify(n)
}

func (b Band) String() string {
	switch b {
	case Building:
		return "building"
	case Sustained:
		return "sustained"
	default:
		return "inactive"
	}
}

// MarshalText encodes the band by name.
func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}
