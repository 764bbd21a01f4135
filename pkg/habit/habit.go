// Package habit defines a single tracked habit and its one-year completion
// history.
package habit

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"tableflip.dev/habit/pkg/calendar"
)

// NameMaxLength bounds a habit name, in runes.
const NameMaxLength = 24

// ErrEmptyName is returned when a name is blank after trimming.
var ErrEmptyName = errors.New("habit: name is empty")

// Habit is one tracked habit. History is indexed by zero based day-of-year
// and is always relative to Year.
type Habit struct {
	Name     string
	LastDone time.Time
	Count    int
	Year     int
	History  [calendar.MaxDaysInYear]bool
}

// New returns a habit with an empty history for year.
func New(name string, year int) (*Habit, error) {
	n, err := CleanName(name)
	if err != nil {
		return nil, err
	}
	return &Habit{Name: n, Year: year}, nil
}

// CleanName trims name, drops commas (they delimit stored rows) and bounds
// it to NameMaxLength runes.
func CleanName(name string) (string, error) {
	name = strings.TrimSpace(strings.ReplaceAll(name, ",", ""))
	if utf8.RuneCountInString(name) > NameMaxLength {
		name = strings.TrimSpace(string([]rune(name)[:NameMaxLength]))
	}
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

// Rename replaces the name in place.
func (h *Habit) Rename(name string) error {
	n, err := CleanName(name)
	if err != nil {
		return err
	}
	h.Name = n
	return nil
}

func inRange(day int) bool {
	return day >= 0 && day < calendar.MaxDaysInYear
}

// Done reports whether the habit was completed on day.
func (h *Habit) Done(day int) bool {
	return inRange(day) && h.History[day]
}

// Toggle flips day and returns its new state. Turning a day on records now
// as the last completion; turning it off clears it. Count follows the toggle
// and never drops below zero.
func (h *Habit) Toggle(day int, now time.Time) bool {
	if !inRange(day) {
		return false
	}
	h.History[day] = !h.History[day]
	if h.History[day] {
		h.LastDone = now
		h.Count++
		return true
	}
	h.LastDone = time.Time{}
	if h.Count > 0 {
		h.Count--
	}
	return false
}

// ResetForNewYear discards the history and starts year afresh. The previous
// year's data is not kept anywhere.
func (h *Habit) ResetForNewYear(year int) {
	h.History = [calendar.MaxDaysInYear]bool{}
	h.Year = year
	h.LastDone = time.Time{}
	h.Count = 0
}

// CurrentStreak counts the consecutive completed days ending at reference.
// It stops at day 0 and never reaches into the previous year.
func (h *Habit) CurrentStreak(reference int) int {
	if !h.Done(reference) {
		return 0
	}
	day := reference
	for day >= 0 && h.History[day] {
		day--
	}
	return reference - day
}

// LongestStreak returns the longest run of completed days in the history.
func (h *Habit) LongestStreak() int {
	best, run := 0, 0
	for _, done := range h.History {
		if !done {
			run = 0
			continue
		}
		run++
		if run > best {
			best = run
		}
	}
	return best
}

// DoneInRange counts completed days in the inclusive range [from, to].
func (h *Habit) DoneInRange(from, to int) int {
	if from < 0 {
		from = 0
	}
	if to >= calendar.MaxDaysInYear {
		to = calendar.MaxDaysInYear - 1
	}
	n := 0
	for day := from; day <= to; day++ {
		if h.History[day] {
			n++
		}
	}
	return n
}

// DoneInMonth counts the completed days of month in the habit's year.
func (h *Habit) DoneInMonth(month time.Month) int {
	first := calendar.YearDay(h.Year, month, 1)
	return h.DoneInRange(first, first+calendar.DaysInMonth(h.Year, month)-1)
}

// Total returns the number of completed days in the history.
func (h *Habit) Total() int {
	return h.DoneInRange(0, calendar.MaxDaysInYear-1)
}
