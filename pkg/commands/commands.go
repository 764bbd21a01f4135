package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/habit/pkg/app"
	"tableflip.dev/habit/pkg/commands/options"
	"tableflip.dev/habit/pkg/logging"
	"tableflip.dev/habit/pkg/store"
)

var (
	output = &options.OutputOptions{}
	so     = &options.StoreOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "habit",
		Short: base.Wrap80("Track daily habits from the terminal."),
		Long: base.Wrap80(`Track daily habits from the terminal. With no command the
interactive tracker opens; the other commands read and change the same store.`),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
	}
	options.AddStoreArgs(cmd, so)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addList(topLevel)
	addAdd(topLevel)
	addRemove(topLevel)
	addRename(topLevel)
	addDone(topLevel)
	addCal(topLevel)
	addInfo(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// openService resolves the configuration and opens the store it names. The
// returned close func flushes the log file.
func openService() (*app.Service, store.Config, func(), error) {
	cfg, err := so.Config()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, closeLog, err := logging.New(cfg.LogFile())
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := store.Load(cfg, logger)
	if err != nil {
		_ = closeLog()
		return nil, nil, nil, err
	}
	svc := &app.Service{
		Persistence: p,
		Capacity:    cfg.Capacity(),
		Logger:      logger,
	}
	return svc, cfg, func() { _ = closeLog() }, nil
}
