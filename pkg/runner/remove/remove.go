package remove

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/habit/pkg/app"
	"tableflip.dev/habit/pkg/snake"
)

type Remove struct {
	Service *app.Service
	Ref     string
	// Yes skips the confirmation prompt.
	Yes bool
	// Confirm asks the user; it defaults to a terminal prompt.
	Confirm func(label string) (bool, error)
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	index, err := n.Service.Resolve(ctx, n.Ref)
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

	if !n.Yes {
		confirm := n.Confirm
		if confirm == nil {
			confirm = snake.Confirm
		}
		ok, err := confirm(fmt.Sprintf("Delete '%s'", name))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(out, "Kept", name)
			return nil
		}
	}

	if err := n.Service.Remove(ctx, index); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, "Deleted", name)
	return nil
}
