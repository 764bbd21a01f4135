package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/habit/pkg/commands/options"
	"tableflip.dev/habit/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where habits are stored.",
		Example: `
habit info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			oo.Out = cmd.OutOrStdout()
			svc, cfg, done, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()
			s := info.Info{
				Config:  cfg,
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
