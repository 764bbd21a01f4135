// Package calendar holds the day-of-year arithmetic shared by the habit
// ledger, the week strip and the month grid.
//
// Day-of-year indices are zero based: January 1 is day 0 and December 31 is
// day 364 (365 in leap years).
package calendar

import (
	"fmt"
	"time"
)

const (
	// DaysInWeek is the width of the week strip.
	DaysInWeek = 7
	// MaxDaysInYear is the size of a habit's history, enough for a leap year.
	MaxDaysInYear = 366
)

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

var monthDays = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func mustMonth(month time.Month) {
	if month < time.January || month > time.December {
		panic(fmt.Sprintf("calendar: invalid month %d", int(month)))
	}
}

// DaysInMonth returns the number of days in month of year. It panics on a
// month outside January..December.
func DaysInMonth(year int, month time.Month) int {
	mustMonth(month)
	if month == time.February && IsLeap(year) {
		return 29
	}
	return monthDays[month-1]
}

// DayOfYear returns the zero based day-of-year of t in t's location.
func DayOfYear(t time.Time) int {
	return t.YearDay() - 1
}

// YearDay returns the zero based day-of-year for a month and day-of-month.
func YearDay(year int, month time.Month, day int) int {
	mustMonth(month)
	yday := day - 1
	for m := time.January; m < month; m++ {
		yday += DaysInMonth(year, m)
	}
	return yday
}

// DateOfDayOfYear is the inverse of DayOfYear. The result is midnight in loc
// (time.Local when loc is nil).
func DateOfDayOfYear(year, day int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	month, mday := MonthDay(year, day)
	return time.Date(year, month, mday, 0, 0, 0, 0, loc)
}

// MonthDay converts a day-of-year into its month and day-of-month. Indices
// outside the year are first moved onto the neighbouring year by Wrap, so
// only the month and day are meaningful for them.
func MonthDay(year, day int) (time.Month, int) {
	year, day = Wrap(year, day)
	month := time.January
	for {
		n := DaysInMonth(year, month)
		if day < n {
			return month, day + 1
		}
		day -= n
		month++
	}
}

// WeekdayOf returns the weekday for a date, Sunday being 0.
func WeekdayOf(year int, month time.Month, day int) time.Weekday {
	mustMonth(month)
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC).Weekday()
}

// FirstOfMonth returns the weekday and day-of-year of the first of month.
func FirstOfMonth(year int, month time.Month) (time.Weekday, int) {
	return WeekdayOf(year, month, 1), YearDay(year, month, 1)
}

// Wrap normalises a day index that fell off either end of year onto the
// neighbouring year. Wrap(2024, -1) is (2023, 364); Wrap(2023, 365) is
// (2024, 0).
func Wrap(year, day int) (int, int) {
	for day < 0 {
		year--
		day += DaysInYear(year)
	}
	for day >= DaysInYear(year) {
		day -= DaysInYear(year)
		year++
	}
	return year, day
}

// Shift returns the date n days after (or before, for negative n) the given
// year and day-of-year, wrapped.
func Shift(year, day, n int) (int, int) {
	return Wrap(year, day+n)
}
