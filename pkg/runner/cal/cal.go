package cal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/habit/pkg/app"
	"tableflip.dev/habit/pkg/printers"
)

// Cal prints month calendars. An empty Ref prints every habit.
type Cal struct {
	Service *app.Service
	Ref     string
	// Month defaults to the current month.
	Month time.Month
	JSON  bool
	Out   io.Writer
}

func (n *Cal) Do(ctx context.Context) error {
	month := n.Month
	if month == 0 {
		month = n.Service.Now().Month()
	}

	var indexes []int
	if n.Ref != "" {
		index, err := n.Service.Resolve(ctx, n.Ref)
		if err != nil {
			return err
		}
		indexes = append(indexes, index)
	} else {
		habits, err := n.Service.Habits(ctx)
		if err != nil {
			return err
		}
		for i := range habits {
			indexes = append(indexes, i)
		}
	}

	views := make([]app.MonthView, 0, len(indexes))
	for _, i := range indexes {
		view, err := n.Service.Month(ctx, i, month)
		if err != nil {
			return err
		}
		views = append(views, view)
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.JSON {
		b, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: out}
	for _, v := range views {
		pp.Month(v)
	}
	return nil
}
