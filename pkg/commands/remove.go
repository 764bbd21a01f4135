package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habit/pkg/commands/options"
	"tableflip.dev/habit/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	yo := &options.YesOptions{}
	var ref string

	cmd := &cobra.Command{
		Use:     "rm <habit>",
		Aliases: []string{"remove", "delete"},
		Short:   "stop tracking a habit",
		Example: `
habit rm 2
habit rm "Drink water" --yes
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit number or name")
			}
			ref = strings.Join(args, " ")
			return nil
		},
		ValidArgsFunction: completeHabits,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, done, err := openService()
			if err != nil {
				return err
			}
			defer done()
			s := remove.Remove{
				Service: svc,
				Ref:     ref,
				Yes:     yo.Yes,
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddYesArgs(cmd, yo)
	topLevel.AddCommand(cmd)
}
