package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/habit/pkg/commands/options"
	"tableflip.dev/habit/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "status"},
		Short:   "show today's progress and every habit's streak",
		Example: `
habit list
habit list --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			oo.Out = cmd.OutOrStdout()
			svc, _, done, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()
			s := list.List{
				Service: svc,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
