package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(habit completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(habit completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletionV2(cmd.OutOrStdout(), true)
		},
	}

	topLevel.AddCommand(cmd)
}

// completeHabits offers stored habit names for the first argument.
func completeHabits(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return habitCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func habitCompletions(toComplete string) []string {
	svc, _, done, err := openService()
	if err != nil {
		return nil
	}
	defer done()
	habits, err := svc.Habits(context.Background())
	if err != nil {
		return nil
	}
	var names []string
	prefix := strings.ToLower(strings.Trim(toComplete, `"`))
	for _, h := range habits {
		if strings.HasPrefix(strings.ToLower(h.Name), prefix) {
			names = append(names, strconv.Quote(h.Name))
		}
	}
	return names
}
