package watch

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/habit/pkg/app"
	"tableflip.dev/habit/pkg/printers"
	"tableflip.dev/habit/pkg/store"
)

// Watch prints the summary, then again every time another process rewrites
// the store, until ctx is done.
type Watch struct {
	Service *app.Service
	Out     io.Writer
}

func (n *Watch) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out}

	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}
	if err := n.print(ctx, pp); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == store.EventRemoved {
				_, _ = fmt.Fprintf(out, "%s was removed\n", ev.Path)
			}
			if _, err := n.Service.Reload(ctx); err != nil {
				return err
			}
			pp.NewLine()
			if err := n.print(ctx, pp); err != nil {
				return err
			}
		}
	}
}

func (n *Watch) print(ctx context.Context, pp printers.PrettyPrint) error {
	sum, err := n.Service.Summary(ctx)
	if err != nil {
		return err
	}
	pp.Title(sum.Date.Format("Monday, January 2"))
	pp.Summary(sum)
	return nil
}
