package rename

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/habit/pkg/app"
)

type Rename struct {
	Service *app.Service
	Ref     string
	Name    string
	Out     io.Writer
}

func (n *Rename) Do(ctx context.Context) error {
	index, err := n.Service.Resolve(ctx, n.Ref)
	if err != nil {
		return err
	}
	if err := n.Service.Rename(ctx, index, n.Name); err != nil {
		return err
	}
	habits, err := n.Service.Habits(ctx)
	if err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "Renamed %d to %s\n", index+1, habits[index].Name)
	return nil
}
