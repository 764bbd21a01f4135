package done

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/habit/pkg/app"
)

const layoutISO = "2006-01-02"

// Done toggles a habit for a day, today unless On is set.
type Done struct {
	Service *app.Service
	Ref     string
	On      *time.Time
	JSON    bool
	Out     io.Writer
}

func (n *Done) Do(ctx context.Context) error {
	index, err := n.Service.Resolve(ctx, n.Ref)
	if err != nil {
		return err
	}
	on := n.Service.Now()
	if n.On != nil {
		on = *n.On
	}
	state, err := n.Service.ToggleDate(ctx, index, on)
	if err != nil {
		return err
	}
	habits, err := n.Service.Habits(ctx)
	if err != nil {
		return err
	}
	name := habits[index].Name

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.JSON {
		b, err := json.Marshal(map[string]interface{}{
			"name": name,
			"date": on.Format(layoutISO),
			"done": state,
		})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	if state {
		_, _ = fmt.Fprintf(out, "%s done on %s\n", name, on.Format(layoutISO))
	} else {
		_, _ = fmt.Fprintf(out, "%s cleared on %s\n", name, on.Format(layoutISO))
	}
	return nil
}
