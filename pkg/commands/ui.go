package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/habit/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive habit tracker",
		Example: `
habit ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command) error {
	svc, _, done, err := openService()
	if err != nil {
		return err
	}
	defer done()
	i := ui.UI{Service: svc, Out: cmd.OutOrStdout()}
	return i.Do(cmd.Context())
}
