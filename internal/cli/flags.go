package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// bindFlags binds config keys to command flags so a flag set on the command line wins over env and defaults
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, flag := range keys {
		// Lookup never fails for flags declared just above
		_ = v.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
}
