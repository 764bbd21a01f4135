// Package window tracks which day the user is looking at, independently of
// today, for the 7-day strip and the month grid.
package window

import (
	"time"

	"tableflip.dev/habit/pkg/calendar"
)

// Window holds the two navigation cursors. Today is never stored: every read
// asks the clock, so a session left open across midnight follows the date.
type Window struct {
	clock func() time.Time

	selected         int // day-of-year, may be negative near January 1
	calendarSelected int // day-of-month, 1-indexed
}

// New returns a window with both cursors on today.
func New(clock func() time.Time) *Window {
	if clock == nil {
		clock = time.Now
	}
	w := &Window{clock: clock}
	w.EnterWeek()
	w.EnterCalendar()
	return w
}

// Now returns the current time from the window's clock.
func (w *Window) Now() time.Time { return w.clock() }

// Year returns the current calendar year.
func (w *Window) Year() int { return w.clock().Year() }

// Reference returns today's day-of-year.
func (w *Window) Reference() int {
	return calendar.DayOfYear(w.clock())
}

// Selected returns the week strip cursor as a day-of-year relative to the
// current year. It is negative when it points into the previous year.
func (w *Window) Selected() int {
	return w.clampWeek(w.selected)
}

// Offset returns how many days the strip cursor sits before today (0..6).
func (w *Window) Offset() int {
	return w.Reference() - w.Selected()
}

// SelectedTarget resolves the strip cursor to a (year, day-of-year) pair.
func (w *Window) SelectedTarget() (int, int) {
	return calendar.Wrap(w.Year(), w.Selected())
}

// EnterWeek puts the strip cursor on today.
func (w *Window) EnterWeek() {
	w.selected = w.Reference()
}

// Left moves the strip cursor one day back, no further than six days before
// today.
func (w *Window) Left() {
	w.selected = w.clampWeek(w.Selected() - 1)
}

// Right moves the strip cursor one day forward, never past today.
func (w *Window) Right() {
	w.selected = w.clampWeek(w.Selected() + 1)
}

func (w *Window) clampWeek(day int) int {
	ref := w.Reference()
	low := ref - (calendar.DaysInWeek - 1)
	switch {
	case day < low:
		return low
	case day > ref:
		return ref
	}
	return day
}

// StripDays returns the seven (year, day-of-year) pairs shown in the week
// strip, oldest first. The last one is today.
func (w *Window) StripDays() [calendar.DaysInWeek]Day {
	var out [calendar.DaysInWeek]Day
	year, ref := w.Year(), w.Reference()
	for i := range out {
		y, d := calendar.Shift(year, ref, i-(calendar.DaysInWeek-1))
		out[i] = Day{Year: y, Index: d}
	}
	return out
}

// Day identifies a day by year and zero based day-of-year.
type Day struct {
	Year  int
	Index int
}

// Weekday returns the weekday of d.
func (d Day) Weekday() time.Weekday {
	month, mday := calendar.MonthDay(d.Year, d.Index)
	return calendar.WeekdayOf(d.Year, month, mday)
}

// CalendarSelected returns the month grid cursor as a day-of-month.
func (w *Window) CalendarSelected() int {
	return w.clampMonth(w.calendarSelected)
}

// DaysInMonth returns the length of the current month.
func (w *Window) DaysInMonth() int {
	now := w.clock()
	return calendar.DaysInMonth(now.Year(), now.Month())
}

// EnterCalendar puts the month grid cursor on today's day-of-month.
func (w *Window) EnterCalendar() {
	w.calendarSelected = w.clock().Day()
}

// CalendarLeft moves the grid cursor back one day, wrapping to the last day
// of the month.
func (w *Window) CalendarLeft() {
	n := w.DaysInMonth()
	w.calendarSelected = (w.CalendarSelected()-2+n)%n + 1
}

// CalendarRight moves the grid cursor forward one day, wrapping to the 1st.
func (w *Window) CalendarRight() {
	n := w.DaysInMonth()
	w.calendarSelected = w.CalendarSelected()%n + 1
}

// CalendarUp moves the grid cursor back a week. A move before the 1st is
// ignored.
func (w *Window) CalendarUp() {
	if next := w.CalendarSelected() - calendar.DaysInWeek; next >= 1 {
		w.calendarSelected = next
	}
}

// CalendarDown moves the grid cursor forward a week. A move past the end of
// the month is ignored.
func (w *Window) CalendarDown() {
	if next := w.CalendarSelected() + calendar.DaysInWeek; next <= w.DaysInMonth() {
		w.calendarSelected = next
	}
}

// CalendarDayOfYear returns the day-of-year under the grid cursor.
func (w *Window) CalendarDayOfYear() int {
	now := w.clock()
	return calendar.YearDay(now.Year(), now.Month(), w.CalendarSelected())
}

func (w *Window) clampMonth(day int) int {
	n := w.DaysInMonth()
	switch {
	case day < 1:
		return 1
	case day > n:
		return n
	}
	return day
}
