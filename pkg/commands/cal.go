package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habit/pkg/commands/options"
	"tableflip.dev/habit/pkg/runner/cal"
)

func addCal(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "cal [habit]",
		Aliases: []string{"calendar"},
		Short:   "show a month of one habit, or of every habit",
		Example: `
habit cal
habit cal 1 --month=feb
`,
		ValidArgsFunction: completeHabits,
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			month, err := mo.GetMonth()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, _, done, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer done()
			s := cal.Cal{
				Service: svc,
				Ref:     strings.Join(args, " "),
				Month:   month,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
