package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/habit/pkg/app"
	"tableflip.dev/habit/pkg/habit"
	"tableflip.dev/habit/pkg/streak"
)

// BarWidth is the number of cells in the progress bar.
const BarWidth = 49

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

var (
	faint = color.New(color.Faint)
	bold  = color.New(color.Bold)
	title = color.New(color.Bold, color.Underline)
	spark = color.New(color.FgYellow)
	hot   = color.New(color.FgRed, color.Bold)
)

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(t string) {
	_, _ = title.Fprintln(pp.out(), t)
}

// Streak renders a streak the way the dashboard does: a dim dash when
// inactive, yellow while building and bold red once sustained.
func Streak(n int, band streak.Band) string {
	switch band {
	case streak.Sustained:
		return hot.Sprintf("%d", n)
	case streak.Building:
		return spark.Sprintf("%d", n)
	default:
		return faint.Sprint("-")
	}
}

// Bar renders a BarWidth wide bar with completed of total cells filled and
// the percentage in the middle.
func Bar(completed, total int) string {
	filled := 0
	if total > 0 {
		filled = completed * BarWidth / total
	}
	label := fmt.Sprintf(" %d%% ", app.Percent(completed, total))
	start := (BarWidth - len(label)) / 2

	var b strings.Builder
	for i := 0; i < BarWidth; i++ {
		if i == start {
			if completed == total && total > 0 {
				b.WriteString(bold.Sprint(label))
			} else {
				b.WriteString(faint.Sprint(label))
			}
			i += len(label) - 1
			continue
		}
		if i < filled {
			b.WriteString(bold.Sprint("-"))
		} else {
			b.WriteString(faint.Sprint("-"))
		}
	}
	return b.String()
}

// Summary prints the progress bar and one row per habit.
func (pp *PrettyPrint) Summary(sum app.Summary) {
	w := pp.out()
	if len(sum.Habits) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(w, "No habits yet. Add one with `habit add <name>`.")
		return
	}

	_, _ = fmt.Fprintln(w, Bar(sum.Completed, len(sum.Habits)))
	pp.NewLine()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Streak"), bold.Sprint("Habit"), bold.Sprint("Today"), bold.Sprint("Best"), bold.Sprint("Month"), bold.Sprint("Year"))
	for _, h := range sum.Habits {
		today := faint.Sprint(".")
		if h.DoneToday {
			today = "x"
		}
		tbl.AddRow(h.Position, Streak(h.Streak, h.Band), Name(h.Name), today, h.Longest, h.ThisMonth, h.Total)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

// Name bounds a habit name to its maximum display width.
func Name(name string) string {
	return truncate.String(name, habit.NameMaxLength)
}
