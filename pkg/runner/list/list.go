package list

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/habit/pkg/app"
	"tableflip.dev/habit/pkg/printers"
)

type List struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (n *List) Do(ctx context.Context) error {
	sum, err := n.Service.Summary(ctx)
	if err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.JSON {
		b, err := json.MarshalIndent(sum, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	pp := printers.PrettyPrint{Out: out}
	pp.Summary(sum)
	return nil
}
