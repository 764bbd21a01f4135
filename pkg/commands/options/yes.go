package options

import (
	"github.com/spf13/cobra"
)

// YesOptions holds the --yes flag.
type YesOptions struct {
	Yes bool
}

func AddYesArgs(cmd *cobra.Command, o *YesOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Do not ask for confirmation.")
}
