package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/habit/pkg/store"
)

// StoreOptions binds the storage flags to the configuration.
type StoreOptions struct {
	v *viper.Viper
}

// AddStoreArgs adds the persistent storage flags to cmd and binds them over
// the environment and config file.
func AddStoreArgs(cmd *cobra.Command, o *StoreOptions) {
	o.v = store.NewViper()
	flags := cmd.PersistentFlags()
	flags.String("path", "",
		Wrap80("Where habits are stored. A file for the file backend, a directory for diskv. Defaults to ~/.habits.csv or ~/.habits.d."))
	flags.String("backend", "",
		Wrap80("Storage backend, one of 'file' or 'diskv'."))
	flags.Int("capacity", 0,
		Wrap80("Maximum number of habits."))
	flags.String("log-file", "",
		Wrap80("Write JSON logs to this file."))

	_ = o.v.BindPFlag("path", flags.Lookup("path"))
	_ = o.v.BindPFlag("backend", flags.Lookup("backend"))
	_ = o.v.BindPFlag("capacity", flags.Lookup("capacity"))
	_ = o.v.BindPFlag("log_file", flags.Lookup("log-file"))
}

// Config resolves flags, environment and config file.
func (o *StoreOptions) Config() (store.Config, error) {
	if o.v == nil {
		return store.LoadConfig()
	}
	return store.ConfigFrom(o.v)
}
