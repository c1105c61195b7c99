package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagBindings maps viper config keys to the flag names that override them.
var flagBindings = map[string]string{
	"package_manager": "package-manager",
	"skip_install":    "skip-install",
	"skip_build":      "skip-build",
	"log_level":       "log-level",
	"log_format":      "log-format",
}

// bindFlags wires each flag into viper so flags override config file and
// environment values.
func bindFlags(cmd *cobra.Command) {
	for key, name := range flagBindings {
		if flag := lookupFlag(cmd, name); flag != nil {
			viper.BindPFlag(key, flag)
		}
	}
}

// lookupFlag finds a flag on the command or its persistent set.
func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag
	}
	return cmd.PersistentFlags().Lookup(name)
}
