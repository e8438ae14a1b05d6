package setup

import (
	"github.com/spf13/cobra"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set up flowforge on this machine",
		Long:  `Write, check, or remove the flowforge configuration file.`,
	}

	cmd.AddCommand(ConfigCmd())

	return cmd
}
