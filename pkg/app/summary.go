package app

import (
	"context"
	"time"

	"tableflip.dev/habit/pkg/calendar"
	"tableflip.dev/habit/pkg/habit"
	"tableflip.dev/habit/pkg/streak"
)

// HabitSummary captures one habit as of a reference day.
type HabitSummary struct {
	Position  int         `json:"position"`
	Name      string      `json:"name"`
	Streak    int         `json:"streak"`
	Band      streak.Band `json:"band"`
	Longest   int         `json:"longest"`
	Total     int         `json:"total"`
	ThisMonth int         `json:"this_month"`
	DoneToday bool        `json:"done_today"`
	LastDone  *time.Time  `json:"last_done,omitempty"`
}

// Summary is the state of every habit on one day.
type Summary struct {
	Date      time.Time      `json:"date"`
	Day       int            `json:"day_of_year"`
	Habits    []HabitSummary `json:"habits"`
	Completed int            `json:"completed"`
	Percent   int            `json:"percent"`
	Capacity  int            `json:"capacity"`
	Location  string         `json:"location"`
}

// Summarize describes habits as of reference, a day of year in now's year.
func Summarize(habits []*habit.Habit, now time.Time, reference int) Summary {
	sum := Summary{
		Date:   now,
		Day:    reference,
		Habits: make([]HabitSummary, 0, len(habits)),
	}
	for i, h := range habits {
		n, band := streak.Of(h, reference)
		item := HabitSummary{
			Position:  i + 1,
			Name:      h.Name,
			Streak:    n,
			Band:      band,
			Longest:   h.LongestStreak(),
			Total:     h.Total(),
			ThisMonth: h.DoneInMonth(now.Month()),
			DoneToday: h.Done(reference),
		}
		if !h.LastDone.IsZero() {
			last := h.LastDone
			item.LastDone = &last
		}
		if item.DoneToday {
			sum.Completed++
		}
		sum.Habits = append(sum.Habits, item)
	}
	sum.Percent = Percent(sum.Completed, len(habits))
	return sum
}

// Percent returns done out of total as a whole percentage, rounding down.
// An empty ledger is 0%.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return done * 100 / total
}

// Summary describes the open ledger as of today.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	l, err := s.Ledger(ctx)
	if err != nil {
		return Summary{}, err
	}
	now := s.Now()
	sum := Summarize(l.All(), now, calendar.DayOfYear(now))
	sum.Capacity = l.Cap()
	sum.Location = s.Persistence.Location()
	return sum, nil
}

// MonthView is one habit's completions over a month.
type MonthView struct {
	Name  string     `json:"name"`
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	// Days is indexed by day of month minus one.
	Days  []bool `json:"days"`
	Done  int    `json:"done"`
	Today int    `json:"today,omitempty"`
}

// Month returns the completions of the habit at index during month of the
// current year. Today is set when the month is the current one.
func (s *Service) Month(ctx context.Context, index int, month time.Month) (MonthView, error) {
	l, err := s.Ledger(ctx)
	if err != nil {
		return MonthView{}, err
	}
	h, err := l.Get(index)
	if err != nil {
		return MonthView{}, err
	}
	now := s.Now()
	return monthOf(h, now, month), nil
}

func monthOf(h *habit.Habit, now time.Time, month time.Month) MonthView {
	year := now.Year()
	first := calendar.YearDay(year, month, 1)
	n := calendar.DaysInMonth(year, month)
	view := MonthView{
		Name:  h.Name,
		Year:  year,
		Month: month,
		Days:  make([]bool, n),
		Done:  h.DoneInMonth(month),
	}
	for d := 0; d < n; d++ {
		view.Days[d] = h.Done(first + d)
	}
	if month == now.Month() {
		view.Today = now.Day()
	}
	return view
}
