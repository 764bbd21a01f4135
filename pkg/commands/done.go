package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habit/pkg/commands/options"
	"tableflip.dev/habit/pkg/runner/done"
)

func addDone(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	on := &options.OnOptions{}
	var ref string

	cmd := &cobra.Command{
		Use:     "done <habit>",
		Aliases: []string{"toggle", "check"},
		Short:   "toggle a habit for today or another day this year",
		Example: `
habit done 1
habit done "Drink water" --on=yesterday
habit done 2 --on=3/14
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
			oo.Out = cmd.OutOrStdout()
			svc, _, closeLog, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer closeLog()
			when, err := on.GetOn(svc.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			s := done.Done{
				Service: svc,
				Ref:     ref,
				On:      when,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
