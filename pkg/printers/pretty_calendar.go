package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/habit/pkg/app"
	"tableflip.dev/habit/pkg/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

// WeekHeader is the single letter weekday row, Sunday first.
const WeekHeader = " S  M  T  W  T  F  S"

// Month prints a month grid with completed days bright, today underlined,
// and a Done footer.
func (pp *PrettyPrint) Month(view app.MonthView) {
	w := pp.out()
	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %s", view.Name, view.Month.String())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), m)
	_, _ = faint.Fprintln(w, WeekHeader)

	d, _ := calendar.FirstOfMonth(view.Year, view.Month)

	// Pad out the start of the month.
	_, _ = fmt.Fprint(w, strings.Repeat("   ", int(d)))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	l3 := color.New(color.Bold, color.FgRed, color.Underline)
	l4 := color.New(color.Underline)

	for i, done := range view.Days {
		day := i + 1
		printer := l1
		switch {
		case day == view.Today && done:
			printer = l3
		case day == view.Today:
			printer = l4
		case done:
			printer = l2
		}
		_, _ = printer.Fprintf(w, "%2d", day)

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		} else if day != len(view.Days) {
			_, _ = fmt.Fprint(w, " ")
		}
	}
	if d != time.Sunday {
		_, _ = fmt.Fprint(w, "\n")
	}
	_, _ = faint.Fprintln(w, strings.Repeat("-", width))
	_, _ = fmt.Fprintf(w, "Done: %d\n\n", view.Done)
}
