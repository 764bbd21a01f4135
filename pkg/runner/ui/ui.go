package ui

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/habit/pkg/app"
	"tableflip.dev/habit/pkg/runner/list"
	teaui "tableflip.dev/habit/pkg/tui/app"
)

// UI opens the interactive tracker. When stdout is not a terminal it prints
// the list instead.
type UI struct {
	Service *app.Service
	// Interactive overrides terminal detection when set.
	Interactive *bool
	Out         io.Writer
}

func (u *UI) Do(ctx context.Context) error {
	if !u.interactive() {
		out := u.Out
		if out == nil {
			out = color.Output
		}
		l := list.List{Service: u.Service, Out: out}
		return l.Do(ctx)
	}
	return teaui.Run(u.Service)
}

func (u *UI) interactive() bool {
	if u.Interactive != nil {
		return *u.Interactive
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
