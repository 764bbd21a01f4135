package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habit/pkg/commands/options"
	"tableflip.dev/habit/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	var name string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "start tracking a new habit",
		Example: `
habit add Drink water
habit add "Read 20 pages"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			oo.Out = cmd.OutOrStdout()
			svc, _, done, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()
			s := add.Add{
				Service: svc,
				Name:    name,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
