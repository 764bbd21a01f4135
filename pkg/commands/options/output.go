package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions holds the --json flag and reports errors in that format.
type OutputOptions struct {
	JSON bool
	// Out receives JSON errors, defaults to color.Output.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		body := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		out := o.Out
		if out == nil {
			out = color.Output
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	return err
}
