package add

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/habit/pkg/app"
)

type Add struct {
	Service *app.Service
	Name    string
	JSON    bool
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	index, err := n.Service.Add(ctx, n.Name)
	if err != nil {
		return err
	}
	habits, err := n.Service.Habits(ctx)
	if err != nil {
		return err
	}
	h := habits[index]

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.JSON {
		b, err := json.Marshal(map[string]interface{}{"position": index + 1, "name": h.Name})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	_, _ = fmt.Fprintf(out, "Added %d: %s\n", index+1, h.Name)
	return nil
}
