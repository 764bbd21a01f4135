package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habit/pkg/runner/rename"
)

func addRename(topLevel *cobra.Command) {
	var ref, name string

	cmd := &cobra.Command{
		Use:     "rename <habit> <new name>",
		Aliases: []string{"mv"},
		Short:   "rename a habit, keeping its history",
		Example: `
habit rename 1 Drink more water
habit rename "Drink water" Hydrate
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a habit number or name and the new name")
			}
			ref = args[0]
			name = strings.Join(args[1:], " ")
			return nil
		},
		ValidArgsFunction: completeHabits,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, done, err := openService()
			if err != nil {
				return err
			}
			defer done()
			s := rename.Rename{
				Service: svc,
				Ref:     ref,
				Name:    name,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
