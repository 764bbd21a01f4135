package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/habit/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "print progress again whenever the store changes",
		Example: `
habit watch
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, done, err := openService()
			if err != nil {
				return err
			}
			defer done()

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := watch.Watch{
				Service: svc,
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
